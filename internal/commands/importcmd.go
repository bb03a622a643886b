package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/reconcile"
	"github.com/fdkeep-dev/fdkeep/internal/records"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var (
		strategy string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import records from a CSV file",
		Long: `Import classifies each row against the existing records before anything
is written: rows are bucketed as new, duplicate, updated, or invalid, and
the chosen strategy decides which buckets are merged. The vault is written
once, after the whole batch is applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			incoming, err := records.ReadCSV(f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			analysis := reconcile.Analyze(incoming, a.env.Records)
			printAnalysis(analysis)

			if dryRun {
				fmt.Println("\nDry run; nothing written.")
				return nil
			}

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
			details := fmt.Sprintf("Imported %d added, %d updated from %s", outcome.Added, outcome.Updated, args[0])
			if err := a.persist("import", details, ""); err != nil {
				return err
			}

			fmt.Printf("\nApplied %q: %d added, %d updated, %d skipped, %d invalid. %d records total.\n",
				strat, outcome.Added, outcome.Updated, outcome.Skipped, outcome.Invalid, outcome.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(reconcile.StrategyNewOnly),
		"merge strategy: new, newAndUpdate, or all")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "classify and preview without writing")

	return cmd
}

func printAnalysis(a *reconcile.Analysis) {
	fmt.Printf("Analyzed %d rows: %d new, %d duplicate, %d updated, %d invalid\n",
		a.Total(), len(a.New), len(a.Duplicates), len(a.Updated), len(a.Invalid))

	for _, e := range a.New {
		fmt.Printf("  new      #%d %s / %s / %s\n", e.Index, e.Record.AccountHolder, e.Record.Bank, e.Record.Amount)
	}
	for _, e := range a.Duplicates {
		fmt.Printf("  dup      #%d %s / %s / %s\n", e.Index, e.Record.AccountHolder, e.Record.Bank, e.Record.Amount)
	}
	for _, e := range a.Updated {
		fmt.Printf("  update   #%d %s / %s / %s\n", e.Index, e.Incoming.AccountHolder, e.Incoming.Bank, e.Incoming.Amount)
		for _, c := range e.Changes {
			fmt.Printf("             %s\n", c)
		}
	}
	for _, e := range a.Invalid {
		fmt.Printf("  invalid  #%d: %s\n", e.Index, e.Reason)
	}
}
