package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/extract"
)

// extract is a pure text tool; confirming and adding the draft is the
// user's job via fdkeep add.
func newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [file.txt]",
		Short: "Extract FD fields from OCR'd certificate text",
		Long: `Extract scans certificate text for a bank name, amount (including lakh
notation), rate, dates, and term, and prints a draft record with a
confidence score. Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text []byte
			var err error
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
			} else {
				text, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("reading certificate text: %w", err)
			}

			d := extract.FromText(string(text))

			fmt.Printf("Bank:       %s\n", orUnknown(d.Bank))
			fmt.Printf("Amount:     %s\n", orUnknown(d.Amount.String()))
			fmt.Printf("Rate:       %s%%\n", orUnknown(d.Rate.String()))
			fmt.Printf("Start:      %s\n", orUnknown(d.StartDate.String()))
			fmt.Printf("Maturity:   %s\n", orUnknown(d.MaturityDate.String()))
			if d.Duration > 0 {
				fmt.Printf("Term:       %d %s\n", d.Duration, d.DurationUnit)
			}
			fmt.Printf("Confidence: %d%%\n", d.Confidence)

			for _, warning := range extract.Warnings(d) {
				fmt.Printf("warning: %s\n", warning)
			}
			return nil
		},
	}

	return cmd
}

func orUnknown(s string) string {
	if s == "" || s == "0" {
		return "(not found)"
	}
	return s
}
