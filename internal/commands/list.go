package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/id"
	"github.com/fdkeep-dev/fdkeep/internal/records"
	"github.com/fdkeep-dev/fdkeep/internal/schedule"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var (
		search     string
		status     string
		sortBy     string
		descending bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fixed-deposit records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}

			now := time.Now()
			recs := records.Search(a.env.Records, search)
			if status != "" {
				recs = records.FilterByStatus(recs, schedule.Status(status), now)
			}
			records.SortBy(recs, sortBy, descending)

			if len(recs) == 0 {
				fmt.Println("No records.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tHOLDER\tBANK\tAMOUNT\tRATE\tTERM\tSTART\tMATURITY\tDAYS\tSTATUS")
			for _, r := range recs {
				maturity := schedule.EffectiveMaturity(r)
				days := schedule.DaysRemaining(maturity, now)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\t%s%%\t%d %s\t%s\t%s\t%d\t%s\n",
					id.Short(r.ID), r.AccountHolder, r.Bank,
					a.currency(), r.Amount, r.Rate,
					r.Duration, r.DurationUnit,
					r.StartDate, maturity, days, schedule.Classify(days))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by holder, bank, or amount substring")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (Active, Expiring Soon, Matured)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by holder, bank, amount, rate, start, or maturity")
	cmd.Flags().BoolVar(&descending, "desc", false, "sort descending")

	return cmd
}
