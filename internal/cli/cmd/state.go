package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/appshell/internal/cli/styles"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/infrastructure/persistence/sqlite"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset the persisted window state",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved window geometry and one-time markers",
	RunE:  runStateShow,
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved window geometry and one-time markers",
	Long: `Reset the window state so the next start uses the configured size and
position, and one-time options such as maximize apply again.`,
	RunE: runStateReset,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateResetCmd)
}

func runStateShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	db, err := app.DB()
	if err != nil {
		return err
	}
	path, _ := app.DatabasePath()

	defaults := *entity.DefaultGeometry(entity.DefaultWindowWidth, entity.DefaultWindowHeight)
	if cfg, cfgErr := app.RequireConfig(); cfgErr == nil {
		opts := cfg.AppOptions()
		defaults = *entity.DefaultGeometry(opts.DefaultWidth(), opts.DefaultHeight())
	}
	return showState(app.Ctx(), cmd.OutOrStdout(), app.Theme, db, path, defaults)
}

func showState(ctx context.Context, w io.Writer, theme *styles.Theme, db *sql.DB, path string, defaults entity.WindowGeometry) error {
	geometry, err := sqlite.NewGeometryRepository(db).Load(ctx, defaults)
	if err != nil {
		return err
	}
	markers, err := sqlite.NewMarkerRepository(db).List(ctx)
	if err != nil {
		return err
	}

	rendered := make([]styles.StateMarker, 0, len(markers))
	for _, m := range markers {
		rendered = append(rendered, styles.StateMarker{Name: m.Name, CreatedAt: m.CreatedAt})
	}
	fmt.Fprintln(w, styles.NewStateRenderer(theme).Render(path, geometry, rendered))
	return nil
}

func runStateReset(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	db, err := app.DB()
	if err != nil {
		return err
	}
	if err := resetState(app.Ctx(), db); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(styles.IconCheck+" window state reset"))
	return nil
}

func resetState(ctx context.Context, db *sql.DB) error {
	if err := sqlite.NewGeometryRepository(db).Reset(ctx); err != nil {
		return err
	}
	markers := sqlite.NewMarkerRepository(db)
	list, err := markers.List(ctx)
	if err != nil {
		return err
	}
	for _, m := range list {
		if err := markers.Clear(ctx, m.Name); err != nil {
			return err
		}
	}
	return nil
}
