package fakehost

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/ui/eventbus"
)

// Message is one payload sent to page content.
type Message struct {
	Channel string
	Payload string
}

// Window implements port.Window in memory.
type Window struct {
	host   *Host
	id     port.WindowID
	events *eventbus.Emitter

	mu          sync.Mutex
	url         string
	history     []string
	historyPos  int
	userAgent   string
	css         []string
	messages    []Message
	zoom        float64
	visible     bool
	closed      bool
	maximized   bool
	fullScreen  bool
	bounds      entity.Bounds
	tabs        []*Window
	parent      *Window
	pendingFull *bool

	// LoadErr, CSSErr and SendErr are returned by the matching calls.
	LoadErr error
	CSSErr  error
	SendErr error
}

var _ port.Window = (*Window)(nil)

func newWindow(h *Host, id port.WindowID, opts port.WindowOptions) *Window {
	zoom := opts.WebPreferences.ZoomFactor
	if zoom <= 0 {
		zoom = 1.0
	}
	w := &Window{
		host:       h,
		id:         id,
		events:     eventbus.New(),
		zoom:       zoom,
		visible:    true,
		fullScreen: opts.FullScreen,
		historyPos: -1,
		bounds:     entity.Bounds{Width: opts.Width, Height: opts.Height},
	}
	if opts.X != nil && opts.Y != nil {
		w.bounds.X, w.bounds.Y = *opts.X, *opts.Y
	}
	return w
}

// ID implements port.Window.
func (w *Window) ID() port.WindowID { return w.id }

// Events implements port.Window.
func (w *Window) Events() port.EventSource { return w.events }

// Emit dispatches ev to the window's handlers.
func (w *Window) Emit(ev *port.Event) *port.Event {
	return w.events.Emit(ev)
}

// Listeners returns the number of live handlers for kind.
func (w *Window) Listeners(kind port.EventKind) int {
	return w.events.Count(kind)
}

// LoadURL implements port.Window. It only records the navigation; tests drive
// the resulting load events explicitly.
func (w *Window) LoadURL(_ context.Context, url string) error {
	w.host.record(w.id, "load", url)
	if w.LoadErr != nil {
		return w.LoadErr
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.history = append(w.history[:w.historyPos+1], url)
	w.historyPos = len(w.history) - 1
	w.url = url
	return nil
}

// URL implements port.Window.
func (w *Window) URL() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.url
}

// GoBack implements port.Window.
func (w *Window) GoBack(context.Context) error {
	w.host.record(w.id, "go-back")
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.historyPos > 0 {
		w.historyPos--
		w.url = w.history[w.historyPos]
	}
	return nil
}

// GoForward implements port.Window.
func (w *Window) GoForward(context.Context) error {
	w.host.record(w.id, "go-forward")
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.historyPos < len(w.history)-1 {
		w.historyPos++
		w.url = w.history[w.historyPos]
	}
	return nil
}

// SetUserAgent implements port.Window.
func (w *Window) SetUserAgent(userAgent string) {
	w.host.record(w.id, "user-agent", userAgent)
	w.mu.Lock()
	defer w.mu.Unlock()
	w.userAgent = userAgent
}

// UserAgent returns the last user agent set.
func (w *Window) UserAgent() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.userAgent
}

// InsertCSS implements port.Window.
func (w *Window) InsertCSS(_ context.Context, css string) error {
	w.host.record(w.id, "insert-css")
	if w.CSSErr != nil {
		return w.CSSErr
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.css = append(w.css, css)
	return nil
}

// InsertedCSS returns every stylesheet inserted so far.
func (w *Window) InsertedCSS() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.css...)
}

// Send implements port.Window.
func (w *Window) Send(_ context.Context, channel, payload string) error {
	w.host.record(w.id, "send", channel)
	if w.SendErr != nil {
		return w.SendErr
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = append(w.messages, Message{Channel: channel, Payload: payload})
	return nil
}

// Messages returns every message sent to the page.
func (w *Window) Messages() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Message(nil), w.messages...)
}

// ZoomFactor implements port.Window. The callback runs synchronously.
func (w *Window) ZoomFactor(done func(factor float64)) {
	w.mu.Lock()
	z := w.zoom
	w.mu.Unlock()
	done(z)
}

// SetZoomFactor implements port.Window.
func (w *Window) SetZoomFactor(factor float64) {
	w.host.record(w.id, "zoom", strconv.FormatFloat(factor, 'f', -1, 64))
	w.mu.Lock()
	defer w.mu.Unlock()
	w.zoom = factor
}

// Zoom returns the current zoom factor.
func (w *Window) Zoom() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.zoom
}

// IsFocused implements port.Window.
func (w *Window) IsFocused() bool { return w.host.isFocused(w) }

// Focus implements port.Window.
func (w *Window) Focus() {
	w.host.record(w.id, "focus")
	w.host.setFocus(w)
}

// Blur removes focus from the window, as when another application is activated.
func (w *Window) Blur() {
	if w.host.isFocused(w) {
		w.host.setFocus(nil)
	}
}

// Hide implements port.Window.
func (w *Window) Hide() {
	w.host.record(w.id, "hide")
	w.mu.Lock()
	w.visible = false
	w.mu.Unlock()
	w.Blur()
}

// Show implements port.Window.
func (w *Window) Show() {
	w.host.record(w.id, "show")
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = true
}

// Visible reports whether the window is shown.
func (w *Window) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Close implements port.Window. It emits EventCloseRequested and destroys
// the window unless a handler prevented it.
func (w *Window) Close() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	w.host.record(w.id, "close-requested")
	ev := w.Emit(&port.Event{Kind: port.EventCloseRequested})
	if ev.DefaultPrevented() {
		w.host.record(w.id, "close-prevented")
		return
	}

	w.mu.Lock()
	w.closed = true
	w.visible = false
	w.mu.Unlock()
	w.Blur()
	w.host.record(w.id, "closed")
	w.Emit(&port.Event{Kind: port.EventClosed})
	w.events.Clear()
}

// Closed reports whether the window was destroyed.
func (w *Window) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Maximize implements port.Window.
func (w *Window) Maximize() {
	w.host.record(w.id, "maximize")
	w.mu.Lock()
	w.maximized = true
	w.mu.Unlock()
	w.Emit(&port.Event{Kind: port.EventMaximized})
}

// Unmaximize restores the window and emits EventUnmaximized.
func (w *Window) Unmaximize() {
	w.mu.Lock()
	w.maximized = false
	w.mu.Unlock()
	w.Emit(&port.Event{Kind: port.EventUnmaximized})
}

// IsMaximized implements port.Window.
func (w *Window) IsMaximized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.maximized
}

// IsFullScreen implements port.Window.
func (w *Window) IsFullScreen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fullScreen
}

// SetFullScreen implements port.Window. The transition completes immediately
// unless the host runs with ManualFullScreen.
func (w *Window) SetFullScreen(fullScreen bool) {
	if fullScreen {
		w.host.record(w.id, "enter-fullscreen")
	} else {
		w.host.record(w.id, "exit-fullscreen")
	}

	w.host.mu.Lock()
	manual := w.host.ManualFullScreen
	w.host.mu.Unlock()

	if manual {
		w.mu.Lock()
		w.pendingFull = &fullScreen
		w.mu.Unlock()
		return
	}
	w.applyFullScreen(fullScreen)
}

// FinishFullScreen completes a deferred fullscreen transition. It reports
// false when none was pending.
func (w *Window) FinishFullScreen() bool {
	w.mu.Lock()
	pending := w.pendingFull
	w.pendingFull = nil
	w.mu.Unlock()
	if pending == nil {
		return false
	}
	w.applyFullScreen(*pending)
	return true
}

func (w *Window) applyFullScreen(fullScreen bool) {
	w.mu.Lock()
	changed := w.fullScreen != fullScreen
	w.fullScreen = fullScreen
	w.mu.Unlock()
	if !changed {
		return
	}
	if fullScreen {
		w.Emit(&port.Event{Kind: port.EventEnteredFullScreen})
	} else {
		w.Emit(&port.Event{Kind: port.EventLeftFullScreen})
	}
}

// Bounds implements port.Window.
func (w *Window) Bounds() entity.Bounds {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bounds
}

// Resize sets the bounds and emits EventResized.
func (w *Window) Resize(b entity.Bounds) {
	w.mu.Lock()
	w.bounds = b
	w.mu.Unlock()
	w.Emit(&port.Event{Kind: port.EventResized})
}

// AddTabbedWindow implements port.Window.
func (w *Window) AddTabbedWindow(child port.Window) error {
	w.host.record(w.id, "add-tab", fmt.Sprintf("w%d", child.ID()))
	fw, ok := child.(*Window)
	if !ok {
		return fmt.Errorf("fakehost: foreign window %T", child)
	}
	w.mu.Lock()
	w.tabs = append(w.tabs, fw)
	w.mu.Unlock()
	fw.mu.Lock()
	fw.parent = w
	fw.mu.Unlock()
	return nil
}

// Tabs returns the windows attached as tabs.
func (w *Window) Tabs() []*Window {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]*Window(nil), w.tabs...)
}

// Parent returns the window this one was attached to as a tab.
func (w *Window) Parent() *Window {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.parent
}

// MoveTabToNewWindow implements port.Window.
func (w *Window) MoveTabToNewWindow() {
	w.host.record(w.id, "move-tab-to-new-window")
}

// Session implements port.Window.
func (w *Window) Session() port.Session { return w.host.session }

// --- Event helpers ---

// StartNavigation emits EventNavigationStarted for url.
func (w *Window) StartNavigation(url string) {
	w.mu.Lock()
	w.url = url
	w.mu.Unlock()
	w.Emit(&port.Event{Kind: port.EventNavigationStarted, URL: url})
}

// ReceiveResponse emits EventResponseReceived.
func (w *Window) ReceiveResponse(url string) {
	w.Emit(&port.Event{Kind: port.EventResponseReceived, URL: url})
}

// FinishLoad emits EventLoadFinished for the current URL.
func (w *Window) FinishLoad() {
	w.Emit(&port.Event{Kind: port.EventLoadFinished, URL: w.URL()})
}

// SetTitle emits EventTitleUpdated.
func (w *Window) SetTitle(title string) {
	w.Emit(&port.Event{Kind: port.EventTitleUpdated, Title: title})
}

// RequestNewWindow emits EventNewWindowRequested and returns the dispatched
// event for inspection.
func (w *Window) RequestNewWindow(url string, disposition entity.Disposition) *port.Event {
	return w.Emit(&port.Event{Kind: port.EventNewWindowRequested, URL: url, Disposition: disposition})
}

// RequestNewTab emits EventNewTabRequested.
func (w *Window) RequestNewTab() {
	w.Emit(&port.Event{Kind: port.EventNewTabRequested})
}
