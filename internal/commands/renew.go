package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/id"
	"github.com/fdkeep-dev/fdkeep/internal/model"
	"github.com/fdkeep-dev/fdkeep/internal/records"
)

func newRenewCommand(opts *rootOptions) *cobra.Command {
	var (
		start    string
		rate     string
		reinvest bool
	)

	cmd := &cobra.Command{
		Use:   "renew <id>",
		Short: "Roll a matured deposit into a new record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}

			p := records.RenewParams{Reinvest: reinvest}
			if start != "" {
				p.StartDate, err = model.ParseDate(start)
				if err != nil {
					return fmt.Errorf("invalid start date %q", start)
				}
			}
			if rate != "" {
				p.Rate, err = decimal.NewFromString(rate)
				if err != nil {
					return fmt.Errorf("invalid rate %q", rate)
				}
			}

			svc := records.NewService(a.env.Records)
			rec, err := svc.Renew(args[0], p)
			if err != nil {
				return err
			}

			a.env.Records = svc.All()
			details := fmt.Sprintf("Renewed FD for %s at %s", rec.AccountHolder, rec.Bank)
			if err := a.persist("renew", details, rec.ID); err != nil {
				return err
			}

			fmt.Printf("Renewed as %s: %s %s @ %s%%, %s to %s\n",
				id.Short(rec.ID), a.currency(), rec.Amount, rec.Rate,
				rec.StartDate, rec.MaturityDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "new start date (defaults to the old maturity date)")
	cmd.Flags().StringVar(&rate, "rate", "", "new rate (defaults to the old rate)")
	cmd.Flags().BoolVar(&reinvest, "reinvest", false, "fold accrued interest into the new principal")

	return cmd
}
