package cmd

import (
	"github.com/spf13/cobra"

	"svcctl/internal/flow"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Run the service status flow once, without the menu",
		Long: `Runs the interactive service status flow directly: pick a namespace,
pick one or more releases, and get a status table. Picking exactly one
release also shows its pods and deployment history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flows, err := setup()
			if err != nil {
				return err
			}
			outcome := flows.ServiceStatus()
			return outcomeToErr(outcome)
		},
	}
}

// outcomeToErr maps a flow outcome to a command result: only a failed flow
// makes the process exit non-zero, a cancelled prompt is a clean exit.
func outcomeToErr(outcome flow.Outcome) error {
	if outcome.Status == flow.StatusFailed {
		return outcome.Err
	}
	return nil
}
