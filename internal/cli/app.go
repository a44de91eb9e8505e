// Package cli holds the dependencies shared by the appshell commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/bnema/appshell/internal/cli/styles"
	"github.com/bnema/appshell/internal/domain/build"
	"github.com/bnema/appshell/internal/infrastructure/config"
	"github.com/bnema/appshell/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/appshell/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Manager *config.Manager
	Config  *config.Config
	// ConfigErr is the load error when the config file is missing a
	// required setting. Commands that only need paths still run.
	ConfigErr error
	Theme     *styles.Theme
	BuildInfo build.Info

	ctx        context.Context
	db         *sql.DB
	logCleanup func()
}

// NewApp loads the configuration and sets up logging.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, err
	}

	app := &App{
		Manager: manager,
		Theme:   styles.NewTheme(),
	}

	if loadErr := manager.Load(); loadErr != nil {
		app.ConfigErr = loadErr
	} else if app.Config, err = manager.Get(); err != nil {
		return nil, err
	}

	app.ctx, app.logCleanup = newLogger(app.Config)
	return app, nil
}

// newLogger builds the CLI logger. Env vars win over the config file.
func newLogger(cfg *config.Config) (context.Context, func()) {
	level, format := os.Getenv(logging.EnvLogLevel), os.Getenv(logging.EnvLogFormat)
	fileCfg := logging.FileConfig{WriteToStderr: true}
	if cfg != nil {
		if level == "" {
			level = cfg.Logging.Level
		}
		if format == "" {
			format = cfg.Logging.Format
		}
		fileCfg.Enabled = cfg.Logging.EnableFileLog
		fileCfg.Dir = cfg.Logging.LogDir
		fileCfg.MaxSizeMB = cfg.Logging.MaxSizeMB
		fileCfg.MaxBackups = cfg.Logging.MaxBackups
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(level)
	if format == "json" {
		logCfg.Format = format
	} else {
		logCfg.TimeFormat = logging.ConsoleTimeFormat
	}

	logger, cleanup, err := logging.NewWithFile(logCfg, fileCfg)
	if err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}
	return logging.WithContext(context.Background(), logger), cleanup
}

// Ctx returns the command context carrying the logger.
func (a *App) Ctx() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

// RequireConfig returns the loaded config or the reason it could not load.
func (a *App) RequireConfig() (*config.Config, error) {
	if a.Config != nil {
		return a.Config, nil
	}
	if a.ConfigErr != nil {
		return nil, a.ConfigErr
	}
	return nil, config.ErrConfigNotLoaded
}

// DatabasePath returns the configured database, or the default location
// when the config did not load.
func (a *App) DatabasePath() (string, error) {
	if a.Config != nil && a.Config.Database.Path != "" {
		return a.Config.Database.Path, nil
	}
	return config.GetDatabaseFile()
}

// DB opens the state database on first use.
func (a *App) DB() (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	path, err := a.DatabasePath()
	if err != nil {
		return nil, err
	}
	db, err := sqlite.NewConnection(a.Ctx(), path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.db = db
	return db, nil
}

// Close releases the database and the log file.
func (a *App) Close() error {
	if a.logCleanup != nil {
		defer a.logCleanup()
		a.logCleanup = nil
	}
	if a.db == nil {
		return nil
	}
	err := sqlite.Close(a.db)
	a.db = nil
	return err
}
