package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/model"
	"github.com/fdkeep-dev/fdkeep/internal/reconcile"
	"github.com/fdkeep-dev/fdkeep/internal/vault"
)

func newBackupCommand(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a plain-JSON backup of the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = fmt.Sprintf("fdkeep-backup-%s.json", time.Now().Format("2006-01-02"))
			}

			if err := vault.WriteBackup(path, a.env); err != nil {
				return err
			}
			fmt.Printf("Backed up %d records to %s\n", len(a.env.Records), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "backup file path")

	return cmd
}

func newRestoreCommand(opts *rootOptions) *cobra.Command {
	var (
		strategy string
		replace  bool
	)

	cmd := &cobra.Command{
		Use:   "restore <backup.json>",
		Short: "Restore records from a plain-JSON backup",
		Long: `Restore merges the backup through the same reconciler as CSV import, so
records already in the vault are kept rather than duplicated. Pass
--replace to discard the current vault contents entirely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}

			backup, err := vault.ReadBackup(args[0])
			if err != nil {
				return err
			}

			if replace {
				a.env.Records = backup.Records
				a.env.AccountHolders = backup.AccountHolders
				a.env.Templates = backup.Templates
				a.env.Settings = backup.Settings
				details := fmt.Sprintf("Restored vault from %s (replace)", args[0])
				if err := a.persist("restore", details, ""); err != nil {
					return err
				}
				fmt.Printf("Replaced vault with %d records from %s\n", len(backup.Records), args[0])
				return nil
			}

			incoming := make([]model.Incoming, 0, len(backup.Records))
			for _, r := range backup.Records {
				incoming = append(incoming, r.AsIncoming())
			}

			analysis := reconcile.Analyze(incoming, a.env.Records)
			strat, err := reconcile.ParseStrategy(strategy)
			if err != nil {
				return err
			}

			outcome, err := reconcile.NewApplier().Apply(analysis, strat, a.env.Records, a.env.AccountHolders)
			if err != nil {
				return err
			}

			a.env.Records = outcome.Records
			a.env.AccountHolders = outcome.Holders
			details := fmt.Sprintf("Restored %d added, %d updated from %s", outcome.Added, outcome.Updated, args[0])
			if err := a.persist("restore", details, ""); err != nil {
				return err
			}

			fmt.Printf("Restored: %d added, %d updated, %d skipped. %d records total.\n",
				outcome.Added, outcome.Updated, outcome.Skipped, outcome.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(reconcile.StrategyNewOnly),
		"merge strategy: new, newAndUpdate, or all")
	cmd.Flags().BoolVar(&replace, "replace", false, "replace the vault instead of merging")

	return cmd
}
