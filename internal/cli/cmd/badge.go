package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/appshell/internal/cli/styles"
	"github.com/bnema/appshell/internal/domain/badge"
	"github.com/bnema/appshell/internal/infrastructure/desktop"
	infrabadge "github.com/bnema/appshell/internal/infrastructure/badge"
)

var badgeSet bool

var badgeCmd = &cobra.Command{
	Use:   "badge <title>",
	Short: "Show the dock badge a page title produces",
	Long: `Parse a page title the way counter mode does, e.g. "Inbox (42)" gives 42.

With --set the result is also sent to the dock of the configured app.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBadge,
}

func init() {
	rootCmd.AddCommand(badgeCmd)
	badgeCmd.Flags().BoolVar(&badgeSet, "set", false, "send the badge to the dock")
}

func runBadge(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	title := strings.Join(args, " ")
	count, matched := badge.ParseCounter(title)
	renderBadge(cmd.OutOrStdout(), app.Theme, title, count, matched)

	if !badgeSet {
		return nil
	}
	cfg, err := app.RequireConfig()
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	entry := infrabadge.NewLauncherEntry(ctx, desktop.AppURI(cfg.App.Name))
	defer func() { _ = entry.Close() }()
	return entry.SetBadge(ctx, count, false)
}

func renderBadge(w io.Writer, theme *styles.Theme, title, count string, matched bool) {
	switch {
	case !matched:
		fmt.Fprintf(w, "%s %s\n", theme.MutedBadge("no counter"), title)
	case count == "":
		fmt.Fprintf(w, "%s %s\n", theme.MutedBadge("cleared"), title)
	default:
		fmt.Fprintf(w, "%s %s\n", theme.Badge.Render(count), title)
	}
}
