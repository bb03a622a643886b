package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/interest"
	"github.com/fdkeep-dev/fdkeep/internal/model"
)

// calc works without a vault; it is a pure calculator.
func newCalcCommand() *cobra.Command {
	var (
		amount   string
		rate     string
		duration float64
		unit     string
		compound int
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Interest calculator",
		Long: `Calc computes interest for an arbitrary principal, rate, and term
without touching the vault. Compounding frequency 0 means simple interest;
stored records always use quarterly compounding (4).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q", amount)
			}
			ratePercent, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("invalid rate %q", rate)
			}

			months := duration
			switch model.ParseDurationUnit(unit) {
			case model.UnitYears:
				months = duration * 12
			case model.UnitDays:
				// Approximate: a banking month of 30 days.
				months = duration / 30
			}

			earned := interest.Compound(principal, ratePercent, months, compound)
			fmt.Printf("Principal: %s\n", principal)
			fmt.Printf("Interest:  %s\n", earned.Round(2))
			fmt.Printf("Maturity:  %s\n", principal.Add(earned).Round(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "principal amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&rate, "rate", "", "annual interest rate percent (required)")
	_ = cmd.MarkFlagRequired("rate")
	cmd.Flags().Float64Var(&duration, "duration", 12, "term length")
	cmd.Flags().StringVar(&unit, "unit", "months", "term unit (months, years, or days)")
	cmd.Flags().IntVar(&compound, "compound", interest.QuarterlyCompoundings,
		"compoundings per year (0 for simple interest)")

	return cmd
}
