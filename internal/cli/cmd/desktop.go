package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/appshell/internal/cli/styles"
	"github.com/bnema/appshell/internal/infrastructure/desktop"
)

var desktopExec string

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Manage the desktop entry of the wrapped app",
}

var desktopInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install a launcher entry for the app",
	RunE:  runDesktopInstall,
}

var desktopRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the launcher entry",
	RunE:  runDesktopRemove,
}

var desktopStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the launcher entry is installed",
	RunE:  runDesktopStatus,
}

func init() {
	rootCmd.AddCommand(desktopCmd)
	desktopCmd.AddCommand(desktopInstallCmd)
	desktopCmd.AddCommand(desktopRemoveCmd)
	desktopCmd.AddCommand(desktopStatusCmd)
	desktopInstallCmd.Flags().StringVar(&desktopExec, "exec", "", "command line to launch (default: this executable)")
}

func runDesktopInstall(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	cfg, err := app.RequireConfig()
	if err != nil {
		return err
	}

	path, err := desktop.NewEntries().Install(app.Ctx(), desktop.EntrySpec{
		Name:      cfg.App.Name,
		TargetURL: cfg.App.TargetURL,
		Icon:      cfg.App.Icon,
		Exec:      desktopExec,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s installed %s\n", app.Theme.Check(true), path)
	return nil
}

func runDesktopRemove(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	cfg, err := app.RequireConfig()
	if err != nil {
		return err
	}

	if err := desktop.NewEntries().Remove(app.Ctx(), cfg.App.Name); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s removed %s\n", app.Theme.Check(true), desktop.AppID(cfg.App.Name))
	return nil
}

func runDesktopStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	cfg, err := app.RequireConfig()
	if err != nil {
		return err
	}

	status, err := desktop.NewEntries().Status(app.Ctx(), cfg.App.Name)
	if err != nil {
		return err
	}
	probe := desktop.NewProbe()

	const keyWidth = 12
	t := app.Theme
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.BoxHeader.Render(styles.IconDesktop+" "+cfg.App.Name))
	fmt.Fprintln(out, t.KeyValue("entry", t.Check(status.Installed)+" "+status.Path, keyWidth))
	fmt.Fprintln(out, t.KeyValue("badge uri", status.AppURI, keyWidth))
	fmt.Fprintln(out, t.KeyValue("platform", probe.OS()+" "+probe.KernelRelease(), keyWidth))
	fmt.Fprintln(out, t.KeyValue("native tabs", fmt.Sprintf("%t", probe.NativeTabsSupported()), keyWidth))
	return nil
}
