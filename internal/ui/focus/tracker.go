// Package focus tracks which managed window has keyboard focus.
package focus

import (
	"context"
	"sync"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/logging"
)

// Tracker implements port.FocusTracker over the managed windows.
// The answer is computed from the host at call time; the last focus event
// only decides which window is asked first.
type Tracker struct {
	mu      sync.Mutex
	windows []port.Window
	last    port.WindowID
}

var _ port.FocusTracker = (*Tracker)(nil)

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Track starts following w until it closes.
func (t *Tracker) Track(ctx context.Context, w port.Window) {
	t.mu.Lock()
	t.windows = append(t.windows, w)
	t.mu.Unlock()

	events := w.Events()
	events.On(port.EventFocused, func(*port.Event) {
		t.mu.Lock()
		t.last = w.ID()
		t.mu.Unlock()
		logging.FromContext(ctx).Trace().Uint64("window_id", uint64(w.ID())).Msg("window focused")
	})
	events.On(port.EventClosed, func(*port.Event) {
		t.forget(w.ID())
	})
}

// FocusedWindow implements port.FocusTracker.
func (t *Tracker) FocusedWindow() (port.Window, bool) {
	t.mu.Lock()
	windows := make([]port.Window, len(t.windows))
	copy(windows, t.windows)
	last := t.last
	t.mu.Unlock()

	for _, w := range windows {
		if w.ID() == last && w.IsFocused() {
			return w, true
		}
	}
	for _, w := range windows {
		if w.IsFocused() {
			return w, true
		}
	}
	return nil, false
}

// Windows returns the tracked windows in creation order.
func (t *Tracker) Windows() []port.Window {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]port.Window, len(t.windows))
	copy(out, t.windows)
	return out
}

func (t *Tracker) forget(id port.WindowID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, w := range t.windows {
		if w.ID() == id {
			t.windows = append(t.windows[:i], t.windows[i+1:]...)
			break
		}
	}
	if t.last == id {
		t.last = 0
	}
}
