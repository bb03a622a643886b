package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fdkeep-dev/fdkeep/internal/holders"
	"github.com/fdkeep-dev/fdkeep/internal/records"
)

func newHoldersCommand(opts *rootOptions) *cobra.Command {
	holdersCmd := &cobra.Command{
		Use:   "holders",
		Short: "Manage account holders",
	}
	holdersCmd.AddCommand(newHoldersListCommand(opts))
	holdersCmd.AddCommand(newHoldersAddCommand(opts))
	holdersCmd.AddCommand(newHoldersRemoveCommand(opts))
	return holdersCmd
}

func newHoldersListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List account holders and their record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			for _, name := range a.env.AccountHolders {
				count := 0
				for _, r := range a.env.Records {
					if r.AccountHolder == name {
						count++
					}
				}
				fmt.Printf("%s (%d FDs)\n", name, count)
			}
			return nil
		},
	}
}

func newHoldersAddCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register an account holder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			reg := holders.NewService(a.env.AccountHolders)
			if !reg.Add(args[0]) {
				return fmt.Errorf("holder %q already registered", args[0])
			}
			a.env.AccountHolders = reg.All()
			if err := a.persist("holder-add", "Registered holder "+args[0], ""); err != nil {
				return err
			}
			fmt.Printf("Registered %s\n", args[0])
			return nil
		},
	}
}

func newHoldersRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an account holder and all their records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			reg := holders.NewService(a.env.AccountHolders)
			if !reg.Remove(args[0]) {
				return fmt.Errorf("no holder named %q", args[0])
			}

			svc := records.NewService(a.env.Records)
			removed := svc.DeleteByHolder(args[0])

			a.env.AccountHolders = reg.All()
			a.env.Records = svc.All()
			details := fmt.Sprintf("Removed holder %s and %d record(s)", args[0], removed)
			if err := a.persist("holder-remove", details, ""); err != nil {
				return err
			}
			fmt.Printf("Removed %s and %d record(s)\n", args[0], removed)
			return nil
		},
	}
}
