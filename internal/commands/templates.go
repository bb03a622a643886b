package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/id"
	"github.com/fdkeep-dev/fdkeep/internal/model"
)

func newTemplatesCommand(opts *rootOptions) *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage bank/term/rate presets",
	}
	templatesCmd.AddCommand(newTemplatesListCommand(opts))
	templatesCmd.AddCommand(newTemplatesSaveCommand(opts))
	templatesCmd.AddCommand(newTemplatesRemoveCommand(opts))
	return templatesCmd
}

func newTemplatesListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			for _, t := range a.env.Templates {
				fmt.Printf("%s: %s, %d %s @ %s%%\n", t.Name, t.Bank, t.Duration, t.DurationUnit, t.Rate)
			}
			return nil
		},
	}
}

func newTemplatesSaveCommand(opts *rootOptions) *cobra.Command {
	var (
		bank     string
		duration int
		unit     string
		rate     string
	)

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}

			r, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("invalid rate %q", rate)
			}

			tpl := model.Template{
				ID:           id.New(),
				Name:         args[0],
				Bank:         bank,
				Duration:     duration,
				DurationUnit: model.ParseDurationUnit(unit),
				Rate:         r,
			}

			// Saving under an existing name overwrites it.
			replaced := false
			for i, t := range a.env.Templates {
				if t.Name == tpl.Name {
					tpl.ID = t.ID
					a.env.Templates[i] = tpl
					replaced = true
					break
				}
			}
			if !replaced {
				a.env.Templates = append(a.env.Templates, tpl)
			}

			if err := a.persist("template-save", "Saved template "+tpl.Name, tpl.ID); err != nil {
				return err
			}
			fmt.Printf("Saved template %s\n", tpl.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&bank, "bank", "", "bank name (required)")
	_ = cmd.MarkFlagRequired("bank")
	cmd.Flags().IntVar(&duration, "duration", 12, "term length")
	cmd.Flags().StringVar(&unit, "unit", "months", "term unit")
	cmd.Flags().StringVar(&rate, "rate", "", "annual interest rate percent (required)")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

func newTemplatesRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			for i, t := range a.env.Templates {
				if t.Name == args[0] {
					a.env.Templates = append(a.env.Templates[:i], a.env.Templates[i+1:]...)
					if err := a.persist("template-remove", "Removed template "+args[0], t.ID); err != nil {
						return err
					}
					fmt.Printf("Removed template %s\n", args[0])
					return nil
				}
			}
			return fmt.Errorf("no template named %q", args[0])
		},
	}
}
