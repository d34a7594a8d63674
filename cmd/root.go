package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"svcctl/internal/config"
	"svcctl/internal/flow"
	"svcctl/pkg/logging"
)

var logLevel string

// rootCmd represents the base command when called without any subcommands.
// Running svcctl bare starts the interactive menu loop.
var rootCmd = &cobra.Command{
	Use:   "svcctl",
	Short: "Inspect Helm release status and switch cluster contexts interactively",
	Long: `svcctl is an interactive companion for operators running Helm-deployed
services on Kubernetes. It wraps the helm and kubectl command-line tools
behind terminal prompts: check release status, inspect pods and deployment
history, and switch between dev and test cluster contexts without typing
the raw commands.

Both helm and kubectl must be installed and on PATH, with a valid
kubeconfig; svcctl does not install or configure them.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. a failed subprocess call)
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		flows, err := setup()
		if err != nil {
			return err
		}
		return flows.RunMenu()
	},
}

// setup initializes logging, loads the layered configuration, and wires the
// flows. Shared by the root command and the direct flow subcommands.
func setup() (*flow.Flows, error) {
	logging.Init(logging.ParseLevel(logLevel), os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return flow.New(cfg), nil
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "svcctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newContextCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
