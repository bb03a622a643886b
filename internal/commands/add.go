package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/banks"
	"github.com/fdkeep-dev/fdkeep/internal/holders"
	"github.com/fdkeep-dev/fdkeep/internal/id"
	"github.com/fdkeep-dev/fdkeep/internal/model"
	"github.com/fdkeep-dev/fdkeep/internal/records"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	var (
		holder   string
		bank     string
		amount   string
		duration int
		unit     string
		rate     string
		start    string
		maturity string
		cert     string
		notes    string
		template string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a fixed-deposit record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}

			p := records.AddParams{
				AccountHolder:     holder,
				Bank:              bank,
				Duration:          duration,
				DurationUnit:      model.ParseDurationUnit(unit),
				CertificateStatus: model.CertificateStatus(cert),
				Notes:             notes,
			}

			if template != "" {
				tpl, err := findTemplate(a.env.Templates, template)
				if err != nil {
					return err
				}
				if p.Bank == "" {
					p.Bank = tpl.Bank
				}
				if !cmd.Flags().Changed("duration") {
					p.Duration = tpl.Duration
					p.DurationUnit = tpl.DurationUnit
				}
				if rate == "" {
					rate = tpl.Rate.String()
				}
			}

			if amount != "" {
				p.Amount, err = decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("invalid amount %q", amount)
				}
			}
			if p.Bank != "" && !banks.IsKnown(p.Bank) {
				log.Debug("bank not in the known-bank list", "bank", p.Bank)
			}
			if rate == "" {
				// Fall back to the published rate table for known banks.
				if suggested, ok := banks.SuggestRate(p.Bank, p.Duration, p.Amount); ok {
					log.Debug("using published rate", "bank", p.Bank, "rate", suggested)
					p.Rate = suggested
				} else {
					return fmt.Errorf("no published rate for %q at %d months; pass --rate", p.Bank, p.Duration)
				}
			} else {
				p.Rate, err = decimal.NewFromString(rate)
				if err != nil {
					return fmt.Errorf("invalid rate %q", rate)
				}
			}
			if start != "" {
				p.StartDate, err = model.ParseDate(start)
				if err != nil {
					return fmt.Errorf("invalid start date %q", start)
				}
			}
			if maturity != "" {
				p.MaturityDate, err = model.ParseDate(maturity)
				if err != nil {
					return fmt.Errorf("invalid maturity date %q", maturity)
				}
			}

			svc := records.NewService(a.env.Records)
			rec, err := svc.Add(p)
			if err != nil {
				return err
			}

			reg := holders.NewService(a.env.AccountHolders)
			reg.Add(rec.AccountHolder)

			a.env.Records = svc.All()
			a.env.AccountHolders = reg.All()
			details := fmt.Sprintf("Added FD for %s at %s", rec.AccountHolder, rec.Bank)
			if err := a.persist("add", details, rec.ID); err != nil {
				return err
			}

			fmt.Printf("Added %s: %s %s at %s, %d %s @ %s%%, matures %s\n",
				id.Short(rec.ID), a.currency(), rec.Amount, rec.Bank,
				rec.Duration, rec.DurationUnit, rec.Rate, rec.MaturityDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&holder, "holder", "", "account holder name (required)")
	_ = cmd.MarkFlagRequired("holder")
	cmd.Flags().StringVar(&bank, "bank", "", "bank name")
	cmd.Flags().StringVar(&amount, "amount", "", "principal amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().IntVar(&duration, "duration", 12, "term length")
	cmd.Flags().StringVar(&unit, "unit", "months", "term unit (months or years)")
	cmd.Flags().StringVar(&rate, "rate", "", "annual interest rate percent")
	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("start")
	cmd.Flags().StringVar(&maturity, "maturity", "", "maturity date (derived when omitted)")
	cmd.Flags().StringVar(&cert, "cert", "", "certificate status")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&template, "template", "", "apply a saved template by name")

	return cmd
}

func findTemplate(templates []model.Template, name string) (model.Template, error) {
	for _, t := range templates {
		if t.Name == name {
			return t, nil
		}
	}
	return model.Template{}, fmt.Errorf("no template named %q", name)
}
