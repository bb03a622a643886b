package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/id"
	"github.com/fdkeep-dev/fdkeep/internal/records"
)

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete records by ID or ID prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}

			svc := records.NewService(a.env.Records)
			deleted := 0
			for _, arg := range args {
				rec, err := svc.Get(arg)
				if err != nil {
					return err
				}
				if svc.Delete(rec.ID) {
					deleted++
					fmt.Printf("Deleted %s (%s at %s)\n", id.Short(rec.ID), rec.AccountHolder, rec.Bank)
				}
			}

			a.env.Records = svc.All()
			return a.persist("delete", fmt.Sprintf("Deleted %d record(s)", deleted), "")
		},
	}

	return cmd
}
