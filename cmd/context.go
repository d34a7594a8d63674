package cmd

import (
	"github.com/spf13/cobra"
)

func newContextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "context",
		Short: "Run the switch-context flow once, without the menu",
		Long: `Runs the interactive context switch directly: pick one of the
configured environments (dev, test by default) and svcctl switches the
active kubeconfig context to the matching cluster.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flows, err := setup()
			if err != nil {
				return err
			}
			return outcomeToErr(flows.SwitchContext())
		},
	}
}
