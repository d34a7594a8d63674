package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the repository self-update checks for releases.
var githubRepoSlug = "svcspace/svcctl"

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update svcctl to the latest release",
		Long: `Checks for the latest release of svcctl on GitHub and, if a newer
version is available, downloads it and replaces the current binary.`,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	version := rootCmd.Version
	if version == "" || version == "dev" {
		return fmt.Errorf("cannot self-update a development version of svcctl; install a released build first")
	}

	ctx := context.Background()

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(githubRepoSlug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting the latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", githubRepoSlug)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("Current version (%s) is the latest\n", version)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	fmt.Printf("Updating svcctl %s -> %s...\n", version, latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version %s\n", latest.Version())
	return nil
}
