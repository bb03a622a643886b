package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/records"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			if err := records.WriteCSV(w, a.env.Records); err != nil {
				return err
			}
			if out != "" {
				fmt.Printf("Exported %d records to %s\n", len(a.env.Records), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "write to a file instead of stdout")

	return cmd
}
