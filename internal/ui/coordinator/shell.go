package coordinator

import (
	"context"
	"fmt"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/application/usecase"
	domainurl "github.com/bnema/appshell/internal/domain/url"
	"github.com/bnema/appshell/internal/logging"
	"github.com/bnema/appshell/internal/ui/focus"
)

// Shell is the composition root of the window-lifecycle controller.
// It builds every component with explicit dependencies and exposes the
// callbacks consumed by menus and the tray.
type Shell struct {
	deps Dependencies

	tracker   *focus.Tracker
	factory   *WindowFactory
	router    *usecase.RouteNavigationUseCase
	injector  *usecase.InjectContentUseCase
	badge     *usecase.UpdateBadgeUseCase
	closer    *usecase.CloseWindowUseCase
	zoom      *usecase.ManageZoomUseCase
	clearData *usecase.ClearAppDataUseCase
	params    *usecase.BroadcastParamsUseCase
}

// NewShell wires the controller. Nothing touches the host until Start.
func NewShell(ctx context.Context, deps Dependencies) (*Shell, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	opts := deps.Options

	params, err := usecase.NewBroadcastParamsUseCase(opts)
	if err != nil {
		return nil, err
	}

	tracker := focus.NewTracker()
	s := &Shell{
		deps:    deps,
		tracker: tracker,
		router: usecase.NewRouteNavigationUseCase(
			domainurl.NewClassifier(opts.TargetURL, opts.InternalURLs),
			deps.Platform,
			deps.Opener,
		),
		injector:  usecase.NewInjectContentUseCase(deps.Style),
		badge:     usecase.NewUpdateBadgeUseCase(deps.Badge, deps.Messages, opts),
		closer:    usecase.NewCloseWindowUseCase(deps.Platform, deps.Tray, opts),
		zoom:      usecase.NewManageZoomUseCase(tracker, opts.BuildTimeZoom()),
		clearData: usecase.NewClearAppDataUseCase(deps.Confirm, opts.TargetURL),
		params:    params,
	}

	parts := Parts{
		Injector: s.injector,
		Params:   s.params,
		Router:   s.router,
		Badge:    s.badge,
		Closer:   s.closer,
	}
	if deps.Markers != nil && deps.Writer != nil {
		parts.Maximize = usecase.NewMaximizeOnceUseCase(deps.Markers, deps.Writer)
	}

	s.factory = NewWindowFactory(deps, parts, tracker)
	s.router.SetSpawner(s.factory)
	s.factory.SetContextMenuBindings(s.ContextMenuBindings(ctx))

	logging.FromContext(ctx).Debug().
		Str("target", opts.TargetURL).
		Str("badge_mode", s.badge.Mode().String()).
		Bool("native_tabs", s.router.NativeTabs()).
		Msg("shell wired")
	return s, nil
}

// Start creates the primary window and installs the application menu.
func (s *Shell) Start(ctx context.Context) (port.Window, error) {
	primary, err := s.factory.CreatePrimary(ctx)
	if err != nil {
		return primary, err
	}

	if s.deps.Menu != nil {
		if err := s.deps.Menu.Build(ctx, s.MenuBindings(ctx)); err != nil {
			return primary, fmt.Errorf("build menu: %w", err)
		}
	}
	return primary, nil
}

// Factory returns the window factory.
func (s *Shell) Factory() *WindowFactory {
	return s.factory
}

// Focus returns the focus tracker.
func (s *Shell) Focus() *focus.Tracker {
	return s.tracker
}

// Closer returns the close coordinator.
func (s *Shell) Closer() *usecase.CloseWindowUseCase {
	return s.closer
}

// Badge returns the badge bridge.
func (s *Shell) Badge() *usecase.UpdateBadgeUseCase {
	return s.badge
}

// SetOnQuit registers the callback run once the primary window may close.
func (s *Shell) SetOnQuit(fn func()) {
	s.closer.SetOnQuit(fn)
}

// Show brings the primary window back, e.g. from a tray click.
func (s *Shell) Show() {
	if w := s.factory.Primary(); w != nil {
		w.Show()
		w.Focus()
	}
}

// Quit closes the primary window for real.
func (s *Shell) Quit(ctx context.Context) {
	if w := s.factory.Primary(); w != nil {
		s.closer.Quit(ctx, w)
	}
}

// MenuBindings returns the callbacks for the application menu. Actions on
// "the current window" look the focused window up on every call.
func (s *Shell) MenuBindings(ctx context.Context) port.MenuBindings {
	opts := s.deps.Options
	return port.MenuBindings{
		Quit:      func() { s.Quit(ctx) },
		ZoomIn:    func() { s.zoom.ZoomIn(ctx) },
		ZoomOut:   func() { s.zoom.ZoomOut(ctx) },
		ZoomReset: func() { s.zoom.ZoomReset(ctx) },
		GoBack: func() {
			s.withFocused(ctx, func(w port.Window) error { return w.GoBack(ctx) })
		},
		GoForward: func() {
			s.withFocused(ctx, func(w port.Window) error { return w.GoForward(ctx) })
		},
		CurrentURL: func() string {
			if w, ok := s.tracker.FocusedWindow(); ok {
				return w.URL()
			}
			return ""
		},
		ClearAppData: func() {
			if w := s.factory.Primary(); w != nil {
				s.clearData.Request(ctx, w)
			}
		},
		Version:          opts.Version,
		BuildTimeZoom:    opts.BuildTimeZoom(),
		DevToolsDisabled: opts.DisableDevTools,
	}
}

// ContextMenuBindings returns the spawning callbacks for context menus.
// The tab callback is nil when native tabs are unavailable.
func (s *Shell) ContextMenuBindings(ctx context.Context) port.ContextMenuBindings {
	bindings := port.ContextMenuBindings{
		OpenInNewWindow: func(url string) { s.router.OpenInNewWindow(ctx, url) },
	}
	if s.router.NativeTabs() {
		bindings.OpenInNewTab = func(url string) { s.router.OpenInNewTab(ctx, url) }
	}
	return bindings
}

func (s *Shell) withFocused(ctx context.Context, fn func(port.Window) error) {
	w, ok := s.tracker.FocusedWindow()
	if !ok {
		return
	}
	if err := fn(w); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("focused window action failed")
	}
}
