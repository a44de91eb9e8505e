package coordinator

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/application/usecase"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/logging"
	"github.com/bnema/appshell/internal/ui/focus"
)

// Parts are the use cases the factory wires onto every window it creates.
type Parts struct {
	Injector *usecase.InjectContentUseCase
	Params   *usecase.BroadcastParamsUseCase
	Router   *usecase.RouteNavigationUseCase
	Badge    *usecase.UpdateBadgeUseCase
	Closer   *usecase.CloseWindowUseCase
	Maximize *usecase.MaximizeOnceUseCase
}

// WindowFactory creates the primary window and the secondary windows and
// tabs spawned by navigation.
type WindowFactory struct {
	deps    Dependencies
	parts   Parts
	tracker *focus.Tracker

	contextMenu port.ContextMenuBindings

	mu      sync.Mutex
	primary port.Window
	keeper  *GeometryKeeper
}

var _ port.WindowSpawner = (*WindowFactory)(nil)

// NewWindowFactory creates a window factory.
func NewWindowFactory(deps Dependencies, parts Parts, tracker *focus.Tracker) *WindowFactory {
	return &WindowFactory{
		deps:    deps,
		parts:   parts,
		tracker: tracker,
	}
}

// SetContextMenuBindings sets the callbacks attached to every window's
// context menu.
func (f *WindowFactory) SetContextMenuBindings(bindings port.ContextMenuBindings) {
	f.contextMenu = bindings
}

// Primary returns the primary window, or nil before CreatePrimary.
func (f *WindowFactory) Primary() port.Window {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.primary
}

// Keeper returns the primary window geometry keeper.
func (f *WindowFactory) Keeper() *GeometryKeeper {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.keeper
}

// CreatePrimary creates the application's single primary window, restores its
// geometry, wires every primary-only handler and loads the target URL.
// A failure to persist the maximize migration is returned with the window.
func (f *WindowFactory) CreatePrimary(ctx context.Context) (port.Window, error) {
	f.mu.Lock()
	if f.primary != nil {
		f.mu.Unlock()
		return nil, ErrPrimaryExists
	}
	f.mu.Unlock()

	opts := f.deps.Options
	log := logging.FromContext(ctx)

	geometry := f.restoreGeometry(ctx)
	w, err := f.deps.Host.CreateWindow(ctx, f.primaryOptions(geometry))
	if err != nil {
		return nil, fmt.Errorf("create primary window: %w", err)
	}
	ctx = logging.WithWindowID(ctx, uint64(w.ID()))

	f.mu.Lock()
	f.primary = w
	f.mu.Unlock()

	f.tracker.Track(ctx, w)

	keeper := NewGeometryKeeper(f.deps.Geometry, f.deps.Scheduler, geometry)
	keeper.Attach(ctx, w)
	f.mu.Lock()
	f.keeper = keeper
	f.mu.Unlock()

	maximized := false
	if f.parts.Maximize != nil {
		maximized, err = f.parts.Maximize.Apply(ctx, w, opts)
		if err != nil {
			return w, err
		}
	}
	if geometry.Maximized && !maximized {
		w.Maximize()
	}

	f.wireContent(ctx, w)

	if f.parts.Badge != nil {
		f.parts.Badge.Attach(ctx, w)
	}
	if f.parts.Closer != nil {
		f.parts.Closer.Attach(ctx, w)
	}
	w.Events().On(port.EventNewTabRequested, func(*port.Event) {
		if _, err := f.CreateTab(ctx, w, opts.TargetURL, true); err != nil {
			log.Error().Err(err).Msg("failed to open new tab")
		}
	})

	if err := w.LoadURL(ctx, opts.TargetURL); err != nil {
		return w, fmt.Errorf("load target url: %w", err)
	}

	log.Info().
		Uint64("window_id", uint64(w.ID())).
		Int("width", geometry.Width).
		Int("height", geometry.Height).
		Str("url", opts.TargetURL).
		Msg("primary window created")
	return w, nil
}

// CreateSecondary implements port.WindowSpawner. Secondary windows use the
// host's default size and inherit the user agent, styling and navigation
// interception of the primary window.
func (f *WindowFactory) CreateSecondary(ctx context.Context, url string) (port.Window, error) {
	w, err := f.deps.Host.CreateWindow(ctx, f.secondaryOptions())
	if err != nil {
		return nil, fmt.Errorf("create secondary window: %w", err)
	}
	ctx = logging.WithWindowID(ctx, uint64(w.ID()))

	f.tracker.Track(ctx, w)
	f.wireContent(ctx, w)

	if err := w.LoadURL(ctx, url); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("url", url).Msg("failed to load url in new window")
	}
	logging.FromContext(ctx).Debug().Str("url", url).Msg("secondary window created")
	return w, nil
}

// CreateTab implements port.WindowSpawner. The tab is attached to parent, or
// to the window focused at call time when parent is nil. A background tab
// hands focus back to its parent.
func (f *WindowFactory) CreateTab(ctx context.Context, parent port.Window, url string, foreground bool) (port.Window, error) {
	if parent == nil {
		focused, ok := f.tracker.FocusedWindow()
		if !ok {
			return nil, ErrNoFocusedWindow
		}
		parent = focused
	}

	tab, err := f.CreateSecondary(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := parent.AddTabbedWindow(tab); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to attach tab, keeping standalone window")
	}

	if foreground {
		tab.Focus()
	} else {
		parent.Focus()
	}
	return tab, nil
}

// wireContent attaches the handlers every managed window carries.
func (f *WindowFactory) wireContent(ctx context.Context, w port.Window) {
	opts := f.deps.Options

	if opts.UserAgent != "" {
		w.SetUserAgent(opts.UserAgent)
	}
	if f.parts.Injector != nil {
		f.parts.Injector.Attach(ctx, w)
	}
	if f.parts.Params != nil {
		f.parts.Params.Attach(ctx, w)
	}
	if f.parts.Router != nil {
		f.parts.Router.Attach(ctx, w)
	}
	if f.deps.ContextMenu != nil && !opts.DisableContextMenu {
		f.deps.ContextMenu.Attach(ctx, w, f.contextMenu)
	}
}

func (f *WindowFactory) restoreGeometry(ctx context.Context) *entity.WindowGeometry {
	opts := f.deps.Options
	defaults := entity.DefaultGeometry(opts.DefaultWidth(), opts.DefaultHeight())
	defaults.X, defaults.Y = opts.X, opts.Y

	if f.deps.Geometry == nil {
		return defaults
	}
	restored, err := f.deps.Geometry.Load(ctx, *defaults)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to load window geometry, using defaults")
		return defaults
	}
	if restored == nil {
		return defaults
	}
	return restored
}

func (f *WindowFactory) tabbingIdentifier() string {
	if f.deps.Platform.NativeTabsSupported() {
		return f.deps.Options.Name
	}
	return ""
}

func (f *WindowFactory) webPreferences() port.WebPreferences {
	opts := f.deps.Options
	return port.WebPreferences{
		JavaScript:      true,
		Plugins:         true,
		NodeIntegration: false,
		WebSecurity:     !opts.Insecure,
		Preload:         f.deps.Preload,
		ZoomFactor:      opts.BuildTimeZoom(),
	}
}

func (f *WindowFactory) primaryOptions(g *entity.WindowGeometry) port.WindowOptions {
	opts := f.deps.Options
	return port.WindowOptions{
		Title:             opts.Name,
		TabbingIdentifier: f.tabbingIdentifier(),
		Frame:             !opts.HideWindowFrame,
		Width:             g.Width,
		Height:            g.Height,
		MinWidth:          opts.MinWidth,
		MinHeight:         opts.MinHeight,
		MaxWidth:          opts.MaxWidth,
		MaxHeight:         opts.MaxHeight,
		X:                 g.X,
		Y:                 g.Y,
		AutoHideMenuBar:   !opts.ShowMenuBar,
		Icon:              f.deps.Icon,
		FullScreen:        opts.FullScreen,
		AlwaysOnTop:       opts.AlwaysOnTop,
		WebPreferences:    f.webPreferences(),
	}
}

func (f *WindowFactory) secondaryOptions() port.WindowOptions {
	return port.WindowOptions{
		TabbingIdentifier: f.tabbingIdentifier(),
		Frame:             true,
		WebPreferences:    f.webPreferences(),
	}
}
