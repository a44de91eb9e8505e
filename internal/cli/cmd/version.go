package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/appshell/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		renderer := styles.NewAboutRenderer(styles.NewTheme())
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
