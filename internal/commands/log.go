package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/activitylog"
)

func newLogCommand(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := activitylog.Read(opts.dataDir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No activity recorded.")
				return nil
			}

			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Timestamp.Format(time.RFC3339), e.Action, e.Details)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show only the last N entries")

	return cmd
}
