package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/id"
	"github.com/fdkeep-dev/fdkeep/internal/report"
	"github.com/fdkeep-dev/fdkeep/internal/schedule"
)

func newDashboardCommand(opts *rootOptions) *cobra.Command {
	var byBank, byHolder bool

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Portfolio summary and upcoming maturities",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			now := time.Now()
			cur := a.currency()

			s := report.Summarize(a.env.Records, now)
			fmt.Printf("Total investment:  %s %s\n", cur, s.TotalInvestment)
			fmt.Printf("Projected interest: %s %s\n", cur, s.TotalInterest.Round(2))
			fmt.Printf("Value at maturity: %s %s\n", cur, s.TotalValue().Round(2))
			fmt.Printf("Average rate:      %s%%\n", s.AverageRate)
			fmt.Printf("Records:           %d active, %d expiring within %d days, %d matured\n",
				s.ActiveCount, s.ExpiringSoonCount, schedule.UpcomingWindowDays, s.MaturedCount)

			if up := report.Upcoming(a.env.Records, now); len(up) > 0 {
				fmt.Println("\nUpcoming maturities:")
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				for _, m := range up {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s %s\t%s\tin %d days\n",
						id.Short(m.Record.ID), m.Record.AccountHolder, m.Record.Bank,
						cur, m.Record.Amount, m.MaturityDate, m.DaysRemaining)
				}
				w.Flush()
			}

			if byBank {
				printGroups("By bank:", cur, report.ByBank(a.env.Records))
			}
			if byHolder {
				printGroups("By holder:", cur, report.ByHolder(a.env.Records))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byBank, "by-bank", false, "show a per-bank breakdown")
	cmd.Flags().BoolVar(&byHolder, "by-holder", false, "show a per-holder breakdown")

	return cmd
}

func printGroups(title, cur string, groups []report.Group) {
	fmt.Println("\n" + title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, g := range groups {
		fmt.Fprintf(w, "  %s\t%d FDs\t%s %s\t+%s %s interest\n",
			g.Name, g.Count, cur, g.Principal, cur, g.Interest.Round(2))
	}
	w.Flush()
}
