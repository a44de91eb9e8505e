package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/appshell/internal/cli/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective session options",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	path := app.Manager.ConfigFile()
	_, statErr := os.Stat(path)
	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPath(path, statErr == nil))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.ConfigFile()
	cfg, err := app.RequireConfig()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderInvalid(path, err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderOptions(path, cfg.AppOptions()))
	return nil
}
