package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newClockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Control the session stopwatch",
	}

	cmd.AddCommand(newClockActionCmd("start", "Start the clock"))
	cmd.AddCommand(newClockActionCmd("pause", "Pause the clock"))
	cmd.AddCommand(newClockActionCmd("toggle", "Start or pause the clock"))
	cmd.AddCommand(newClockActionCmd("reset", "Zero the clock and clear the penalty"))
	cmd.AddCommand(newClockPenaltyCmd())

	return cmd
}

func newClockActionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result Session

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/clock/%s", code, action), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Clock)
			return nil
		},
	}
}

func newClockPenaltyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "penalty <seconds>",
		Short: "Set penalty seconds added to the recorded time (0-30, clock paused)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			seconds, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid penalty %q: %w", args[0], err)
			}

			var result Session

			req := map[string]int{"seconds": seconds}
			if err := client.Put(fmt.Sprintf("/api/v1/sessions/%s/clock/penalty", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Clock)
			return nil
		},
	}
}
