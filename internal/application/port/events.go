package port

import "github.com/bnema/appshell/internal/domain/entity"

// EventKind identifies a host window event.
type EventKind int

const (
	// EventLoadFinished fires when the page and its subresources finished loading.
	EventLoadFinished EventKind = iota
	// EventNavigationStarted fires when the main frame commits to a new document.
	EventNavigationStarted
	// EventResponseReceived fires for each network response of the current load.
	EventResponseReceived
	// EventNewWindowRequested fires when the page asks to open a new window or tab.
	// Cancellable; handlers may provide a replacement guest window.
	EventNewWindowRequested
	// EventTitleUpdated fires when the document title changes.
	EventTitleUpdated
	// EventFocused fires when the window gains focus.
	EventFocused
	// EventBlurred fires when the window loses focus.
	EventBlurred
	// EventCloseRequested fires before the window closes. Cancellable.
	EventCloseRequested
	// EventClosed fires after the window is gone.
	EventClosed
	// EventEnteredFullScreen fires when the window entered fullscreen.
	EventEnteredFullScreen
	// EventLeftFullScreen fires when the window left fullscreen.
	EventLeftFullScreen
	// EventNewTabRequested fires when the user asks for a new tab (e.g. the "+" button).
	EventNewTabRequested
	// EventResized fires when the window size changed.
	EventResized
	// EventMoved fires when the window position changed.
	EventMoved
	// EventMaximized fires when the window was maximized.
	EventMaximized
	// EventUnmaximized fires when the window was restored from maximized.
	EventUnmaximized
)

// String returns a human-readable representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLoadFinished:
		return "load-finished"
	case EventNavigationStarted:
		return "navigation-started"
	case EventResponseReceived:
		return "response-received"
	case EventNewWindowRequested:
		return "new-window-requested"
	case EventTitleUpdated:
		return "title-updated"
	case EventFocused:
		return "focused"
	case EventBlurred:
		return "blurred"
	case EventCloseRequested:
		return "close-requested"
	case EventClosed:
		return "closed"
	case EventEnteredFullScreen:
		return "entered-fullscreen"
	case EventLeftFullScreen:
		return "left-fullscreen"
	case EventNewTabRequested:
		return "new-tab-requested"
	case EventResized:
		return "resized"
	case EventMoved:
		return "moved"
	case EventMaximized:
		return "maximized"
	case EventUnmaximized:
		return "unmaximized"
	default:
		return "unknown"
	}
}

// Event carries one host notification to the handlers attached to a window.
// The same *Event is passed to every handler so cancellation and guest
// replacement are visible to the host after dispatch.
type Event struct {
	Kind EventKind
	// URL is set for navigation, response and new-window events.
	URL string
	// Title is set for EventTitleUpdated.
	Title string
	// Disposition is set for EventNewWindowRequested.
	Disposition entity.Disposition

	defaultPrevented bool
	guest            Window
}

// PreventDefault cancels the host's default action for cancellable events.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler cancelled the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// SetGuest provides the window the host should use instead of creating one.
func (e *Event) SetGuest(w Window) {
	e.guest = w
}

// Guest returns the replacement window set by a handler, if any.
func (e *Event) Guest() Window {
	return e.guest
}

// EventHandler reacts to a window event.
type EventHandler func(ev *Event)

// ListenerID identifies one registered handler. Zero is never issued.
type ListenerID uint64

// EventSource is the subscription surface of a window.
// Handlers for the same kind run in registration order.
type EventSource interface {
	// On registers handler for kind until Off is called.
	On(kind EventKind, handler EventHandler) ListenerID
	// Once registers handler for the next event of kind only.
	Once(kind EventKind, handler EventHandler) ListenerID
	// Off removes a handler. Removing an unknown or fired listener is a no-op.
	Off(id ListenerID)
}
