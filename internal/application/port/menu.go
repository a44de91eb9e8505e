package port

import "context"

// MenuBindings are the callbacks and read-only values exposed to the
// application menu. Actions that target "the current window" re-resolve the
// focused window on every call.
type MenuBindings struct {
	Quit         func()
	ZoomIn       func()
	ZoomOut      func()
	ZoomReset    func()
	GoBack       func()
	GoForward    func()
	CurrentURL   func() string
	ClearAppData func()

	Version          string
	BuildTimeZoom    float64
	DevToolsDisabled bool
}

// ContextMenuBindings are the spawning callbacks offered by the page context menu.
// OpenInNewTab is nil when native tabs are unavailable.
type ContextMenuBindings struct {
	OpenInNewWindow func(url string)
	OpenInNewTab    func(url string)
}

// MenuBuilder installs the application menu.
type MenuBuilder interface {
	Build(ctx context.Context, bindings MenuBindings) error
}

// ContextMenu installs the per-window context menu.
type ContextMenu interface {
	Attach(ctx context.Context, window Window, bindings ContextMenuBindings)
}
