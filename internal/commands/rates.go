package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/banks"
)

// rates needs no vault; the bank database is compiled in.
func newRatesCommand() *cobra.Command {
	var listBanks bool

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show published fixed-deposit rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listBanks {
				for _, b := range banks.All() {
					fmt.Println(b)
				}
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BANK\tTERM\tRATE\tMIN AMOUNT")
			for _, p := range banks.PublishedRates() {
				for _, s := range p.Slabs {
					fmt.Fprintf(w, "%s\t%d months\t%s%%\t%s\n", p.Bank, s.DurationMonths, s.Rate, s.MinAmount)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&listBanks, "banks", false, "list all known banks instead of rates")

	return cmd
}
