package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/config"
	"github.com/fdkeep-dev/fdkeep/internal/gitops"
	"github.com/fdkeep-dev/fdkeep/internal/vault"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	var owner string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new fdkeep data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(opts.dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if opts.pin == "" {
				return fmt.Errorf("a PIN is required (--pin or $FDKEEP_PIN)")
			}
			return runInit(dir, owner, opts.pin, useGit)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner name (required)")
	_ = cmd.MarkFlagRequired("owner")
	cmd.Flags().BoolVar(&useGit, "git", false, "track the data directory with git snapshots")

	return cmd
}

func runInit(dir, owner, pin string, useGit bool) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfgPath := config.Path(dir)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already initialized", dir)
	}

	cfg := config.Default(owner)
	cfg.Git.AutoCommit = useGit
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	store := vault.NewStore(config.VaultPath(dir), pin)
	if err := store.Save(vault.NewEnvelope()); err != nil {
		return fmt.Errorf("creating vault: %w", err)
	}

	if useGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitAll(dir, "fdkeep: initialize "+owner, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized fdkeep at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Printf("Initialized fdkeep at %s\n", dir)
	return nil
}
