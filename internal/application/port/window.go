// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the windowing host and desktop integration, allowing the
// application layer to remain independent of a specific toolkit.
package port

import (
	"context"

	"github.com/bnema/appshell/internal/domain/entity"
)

// WindowID uniquely identifies a host window.
type WindowID uint64

// WebPreferences configures the web content of a window.
type WebPreferences struct {
	JavaScript      bool
	Plugins         bool
	NodeIntegration bool
	WebSecurity     bool
	// Preload is a script run in the page before any other script.
	Preload    string
	ZoomFactor float64
}

// WindowOptions is the construction profile handed to the host.
// Zero sizes and nil positions let the host pick defaults.
type WindowOptions struct {
	Title string
	// TabbingIdentifier groups windows into native tabs. Empty disables grouping.
	TabbingIdentifier string

	Frame           bool
	Width, Height   int
	MinWidth        int
	MinHeight       int
	MaxWidth        int
	MaxHeight       int
	X, Y            *int
	AutoHideMenuBar bool
	Icon            string
	FullScreen      bool
	AlwaysOnTop     bool

	WebPreferences WebPreferences
}

// Session is the storage partition shared by the application's windows.
// Completion callbacks run on the UI thread.
type Session interface {
	// ClearStorageData removes cookies, local storage and similar site data.
	ClearStorageData(done func(err error))
	// ClearCache drops the HTTP cache.
	ClearCache(done func(err error))
}

// Window is a host window together with its web content.
// All methods must be called on the UI thread.
type Window interface {
	ID() WindowID
	// Events exposes the window's ordered event subscriptions.
	Events() EventSource

	// --- Content ---

	// LoadURL navigates the window's content.
	LoadURL(ctx context.Context, url string) error
	// URL returns the current content URL.
	URL() string
	GoBack(ctx context.Context) error
	GoForward(ctx context.Context) error
	SetUserAgent(userAgent string)
	// InsertCSS adds a stylesheet to the current document.
	InsertCSS(ctx context.Context, css string) error
	// Send posts a message to the page-side script on channel.
	Send(ctx context.Context, channel, payload string) error

	// --- Zoom ---

	// ZoomFactor reads the current zoom asynchronously.
	ZoomFactor(done func(factor float64))
	SetZoomFactor(factor float64)

	// --- Window state ---

	IsFocused() bool
	Focus()
	Hide()
	Show()
	Close()
	Maximize()
	IsMaximized() bool
	IsFullScreen() bool
	SetFullScreen(fullScreen bool)
	Bounds() entity.Bounds

	// --- Tabs ---

	// AddTabbedWindow attaches w as a native tab of this window.
	AddTabbedWindow(w Window) error
	// MoveTabToNewWindow detaches the selected tab into a standalone window.
	MoveTabToNewWindow()

	Session() Session
}

// WindowHost creates windows. It is the entry point into the windowing toolkit.
type WindowHost interface {
	CreateWindow(ctx context.Context, opts WindowOptions) (Window, error)
}

// FocusTracker resolves the focused window at the time of the call.
// Callers must not cache the result across events.
type FocusTracker interface {
	FocusedWindow() (Window, bool)
}
