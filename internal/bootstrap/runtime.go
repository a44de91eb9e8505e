// Package bootstrap assembles the application shell from configuration and
// the collaborators supplied by the windowing toolkit.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync/atomic"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/infrastructure/badge"
	"github.com/bnema/appshell/internal/infrastructure/config"
	"github.com/bnema/appshell/internal/infrastructure/desktop"
	"github.com/bnema/appshell/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/appshell/internal/infrastructure/style"
	"github.com/bnema/appshell/internal/infrastructure/tray"
	"github.com/bnema/appshell/internal/logging"
	"github.com/bnema/appshell/internal/ui/coordinator"
	"golang.org/x/sync/errgroup"
)

// HostBindings are the collaborators only the windowing toolkit can provide.
type HostBindings struct {
	Host      port.WindowHost
	Scheduler port.Scheduler
	Confirm   port.Confirmer
	Messages  port.MessageSource
	// Menu and ContextMenu are optional.
	Menu        port.MenuBuilder
	ContextMenu port.ContextMenu
}

// ConfigWatcher reports edits to the config file while the shell runs.
// *config.Manager implements it.
type ConfigWatcher interface {
	Watch() error
	OnConfigChange(callback func(*config.Config))
}

var _ ConfigWatcher = (*config.Manager)(nil)

// RuntimeInput configures NewRuntime. Desktop adapters left nil are created
// for the running system.
type RuntimeInput struct {
	Config   *config.Config
	Writer   port.OptionsWriter
	Bindings HostBindings
	// Watcher is optional. Reloads never change the running options.
	Watcher ConfigWatcher

	Platform port.Platform
	Opener   port.ExternalOpener
	Badge    port.BadgeSink
	// Tray is used instead of the system tray when Behavior.Tray is set.
	Tray *tray.Systray
}

// Runtime owns the shell and every resource opened for it.
type Runtime struct {
	Shell   *coordinator.Shell
	Options *entity.AppOptions

	db     *sql.DB
	style  *style.FileSource
	badge  *badge.LauncherEntry
	tray   *tray.Systray
	closed bool

	restartRequired atomic.Bool
}

// NewRuntime opens storage, builds the desktop adapters and wires the shell.
// Nothing is shown until Start.
func NewRuntime(ctx context.Context, in RuntimeInput) (_ *Runtime, err error) {
	if in.Config == nil {
		return nil, errors.New("bootstrap: config is required")
	}
	ctx = logging.WithComponent(ctx, "bootstrap")
	log := logging.FromContext(ctx)
	cfg := in.Config

	r := &Runtime{Options: cfg.AppOptions()}
	defer func() {
		if err != nil {
			_ = r.Close()
		}
	}()

	// Storage and stylesheet are independent; both must be ready before
	// the first window asks for its geometry.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		db, openErr := sqlite.NewConnection(gctx, cfg.Database.Path)
		if openErr != nil {
			return fmt.Errorf("open database: %w", openErr)
		}
		r.db = db
		return nil
	})
	g.Go(func() error {
		src, loadErr := style.NewFileSource(gctx, cfg.Inject.CSSFile)
		if loadErr != nil {
			return fmt.Errorf("load stylesheet: %w", loadErr)
		}
		r.style = src
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if watchErr := r.style.Watch(ctx); watchErr != nil {
		log.Warn().Err(watchErr).Msg("stylesheet reload disabled")
	}

	if in.Watcher != nil {
		r.watchConfig(ctx, in.Watcher)
	}

	platform := in.Platform
	if platform == nil {
		platform = desktop.NewProbe()
	}
	opener := in.Opener
	if opener == nil {
		opener = desktop.NewOpener()
	}
	sink := in.Badge
	if sink == nil {
		r.badge = badge.NewLauncherEntry(ctx, desktop.AppURI(r.Options.Name))
		sink = r.badge
	}

	deps := coordinator.Dependencies{
		Options:     r.Options,
		Host:        in.Bindings.Host,
		Scheduler:   in.Bindings.Scheduler,
		Platform:    platform,
		Opener:      opener,
		Badge:       sink,
		Messages:    in.Bindings.Messages,
		Confirm:     in.Bindings.Confirm,
		Geometry:    sqlite.NewGeometryRepository(r.db),
		Markers:     sqlite.NewMarkerRepository(r.db),
		Writer:      in.Writer,
		Style:       r.style,
		Icon:        cfg.App.Icon,
		Preload:     cfg.Inject.Preload,
		Menu:        in.Bindings.Menu,
		ContextMenu: in.Bindings.ContextMenu,
	}

	if r.Options.Tray {
		r.tray = in.Tray
		if r.tray == nil {
			r.tray = tray.New(tray.Options{
				Title:   r.Options.Name,
				Tooltip: r.Options.TargetURL,
				Icon:    readIcon(ctx, cfg.App.Icon),
			}, in.Bindings.Scheduler, tray.Actions{
				Show: func() { r.Shell.Show() },
				Quit: func() { r.Shell.Quit(ctx) },
			})
		}
		deps.Tray = r.tray
	}

	r.Shell, err = coordinator.NewShell(ctx, deps)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("name", r.Options.Name).
		Str("target", r.Options.TargetURL).
		Str("database", cfg.Database.Path).
		Msg("runtime ready")
	return r, nil
}

func (r *Runtime) watchConfig(ctx context.Context, w ConfigWatcher) {
	log := logging.FromContext(ctx)
	w.OnConfigChange(func(cfg *config.Config) {
		if cfg == nil {
			return
		}
		if reflect.DeepEqual(*cfg.AppOptions(), *r.Options) {
			log.Debug().Msg("config reloaded, options unchanged")
			return
		}
		r.restartRequired.Store(true)
		log.Info().Msg("config changed, restart to apply")
	})
	if err := w.Watch(); err != nil {
		log.Warn().Err(err).Msg("config reload disabled")
	}
}

// RestartRequired reports whether the config file changed the options
// since the runtime was built.
func (r *Runtime) RestartRequired() bool {
	return r.restartRequired.Load()
}

// Start shows the tray icon (when enabled) and the primary window.
func (r *Runtime) Start(ctx context.Context) (port.Window, error) {
	if r.tray != nil {
		r.tray.Start(ctx)
	}
	return r.Shell.Start(ctx)
}

// Close releases storage, watchers and desktop connections.
func (r *Runtime) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error
	if r.tray != nil {
		r.tray.Stop()
	}
	if r.style != nil {
		errs = append(errs, r.style.Close())
	}
	if r.badge != nil {
		errs = append(errs, r.badge.Close())
	}
	if r.db != nil {
		errs = append(errs, sqlite.Close(r.db))
	}
	return errors.Join(errs...)
}

func readIcon(ctx context.Context, path string) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", path).Msg("tray icon unavailable")
		return nil
	}
	return data
}
