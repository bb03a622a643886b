// Package commands wires the CLI. Commands load the vault, operate through
// the domain packages, and persist once; no business logic lives here.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/buildinfo"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	dataDir string
	pin     string
	verbose bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "fdkeep",
		Short:   "Fixed-deposit record keeper",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
			if opts.pin == "" {
				opts.pin = os.Getenv("FDKEEP_PIN")
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "dir", defaultDataDir(), "data directory")
	rootCmd.PersistentFlags().StringVar(&opts.pin, "pin", "", "vault PIN (defaults to $FDKEEP_PIN)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newAddCommand(opts))
	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newDeleteCommand(opts))
	rootCmd.AddCommand(newRenewCommand(opts))
	rootCmd.AddCommand(newImportCommand(opts))
	rootCmd.AddCommand(newExportCommand(opts))
	rootCmd.AddCommand(newBackupCommand(opts))
	rootCmd.AddCommand(newRestoreCommand(opts))
	rootCmd.AddCommand(newDashboardCommand(opts))
	rootCmd.AddCommand(newCalcCommand())
	rootCmd.AddCommand(newHoldersCommand(opts))
	rootCmd.AddCommand(newTemplatesCommand(opts))
	rootCmd.AddCommand(newRatesCommand())
	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newLogCommand(opts))

	return rootCmd
}

func defaultDataDir() string {
	if dir := os.Getenv("FDKEEP_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".fdkeep")
}
