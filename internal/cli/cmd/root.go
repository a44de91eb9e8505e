// Package cmd provides the Cobra CLI commands for appshell.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/appshell/internal/cli"
	"github.com/bnema/appshell/internal/domain/build"
)

var errAppNotInitialized = errors.New("app not initialized")

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "appshell",
		Short: "Window-lifecycle controller for wrapped web applications",
		Long: `appshell turns a web application into a desktop application.

It keeps one primary window on the target URL, routes every navigation to the
right place (same window, a new window or tab, or the system browser), restores
window geometry, injects a user stylesheet and mirrors unread counters on the
dock badge.

The subcommands inspect and maintain the state of a wrapped application.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}
