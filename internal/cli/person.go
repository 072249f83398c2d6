package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPersonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "person",
		Aliases: []string{"people"},
		Short:   "Roster commands",
	}

	cmd.AddCommand(newPersonAddCmd())
	cmd.AddCommand(newPersonRecordCmd())
	cmd.AddCommand(newPersonGetCmd())
	cmd.AddCommand(newPersonRemoveCmd())
	cmd.AddCommand(newPersonListCmd())
	cmd.AddCommand(newPersonNamesCmd())

	return cmd
}

func newPersonAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a person with the paused clock's time, then reset the clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result AddPersonResult

			req := map[string]string{"name": args[0]}
			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/people", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPersonRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record <name>",
		Short: "Record the paused clock's time against a person, then reset the clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result RecordResult

			req := map[string]string{"name": args[0]}
			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/people/record", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPersonGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a person's times and summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result Person

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/people/%s", code, args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPersonRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a person from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			if err := client.Delete(fmt.Sprintf("/api/v1/sessions/%s/people/%s", code, args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Removed person %s", args[0]))
			return nil
		},
	}
}

func newPersonListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List people with their summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result PeopleResult

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/people", code), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPersonNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the distinct names a time can be recorded against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result NamesResult

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/people/names", code), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
