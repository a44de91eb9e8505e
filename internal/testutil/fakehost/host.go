// Package fakehost is a deterministic in-memory windowing host for tests.
// Every host call is appended to a shared journal so tests can assert the
// order of side effects across windows.
package fakehost

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/appshell/internal/application/port"
)

// ErrCreateFailed is returned by CreateWindow when FailCreate is set.
var ErrCreateFailed = errors.New("fakehost: window creation failed")

// Host implements port.WindowHost.
type Host struct {
	mu      sync.Mutex
	nextID  port.WindowID
	windows []*Window
	opts    map[port.WindowID]port.WindowOptions
	journal []string
	session *Session
	focused *Window

	// FailCreate makes the next CreateWindow calls fail.
	FailCreate bool
	// ManualFullScreen defers enter/leave fullscreen events until
	// Window.FinishFullScreen is called.
	ManualFullScreen bool
}

var _ port.WindowHost = (*Host)(nil)

// New creates an empty host.
func New() *Host {
	h := &Host{opts: make(map[port.WindowID]port.WindowOptions)}
	h.session = &Session{host: h}
	return h
}

// CreateWindow implements port.WindowHost.
func (h *Host) CreateWindow(_ context.Context, opts port.WindowOptions) (port.Window, error) {
	h.mu.Lock()
	if h.FailCreate {
		h.mu.Unlock()
		return nil, ErrCreateFailed
	}
	h.nextID++
	w := newWindow(h, h.nextID, opts)
	h.windows = append(h.windows, w)
	h.opts[w.id] = opts
	h.mu.Unlock()

	h.record(w.id, "create")
	return w, nil
}

// Windows returns the created windows in creation order.
func (h *Host) Windows() []*Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*Window, len(h.windows))
	copy(out, h.windows)
	return out
}

// Window returns the window created n-th (starting at 0).
func (h *Host) Window(n int) *Window {
	ws := h.Windows()
	if n < 0 || n >= len(ws) {
		return nil
	}
	return ws[n]
}

// Options returns the profile a window was created with.
func (h *Host) Options(id port.WindowID) port.WindowOptions {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.opts[id]
}

// Session returns the session shared by all windows.
func (h *Host) Session() *Session {
	return h.session
}

// Journal returns every recorded host call as "w<id> <op>[ <arg>]".
func (h *Host) Journal() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.journal))
	copy(out, h.journal)
	return out
}

// ResetJournal forgets recorded calls.
func (h *Host) ResetJournal() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.journal = nil
}

// Record appends an arbitrary entry, letting tests interleave their own
// markers (e.g. collaborator calls) with host calls.
func (h *Host) Record(entry string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.journal = append(h.journal, entry)
}

func (h *Host) record(id port.WindowID, op string, args ...string) {
	entry := fmt.Sprintf("w%d %s", id, op)
	for _, a := range args {
		entry += " " + a
	}
	h.Record(entry)
}

// setFocus moves focus to w (or nowhere when w is nil) and emits the
// matching blur/focus events.
func (h *Host) setFocus(w *Window) {
	h.mu.Lock()
	prev := h.focused
	h.focused = w
	h.mu.Unlock()

	if prev == w {
		return
	}
	if prev != nil {
		prev.Emit(&port.Event{Kind: port.EventBlurred})
	}
	if w != nil {
		w.Emit(&port.Event{Kind: port.EventFocused})
	}
}

func (h *Host) isFocused(w *Window) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.focused == w
}

// Session implements port.Session.
type Session struct {
	host *Host

	// StorageErr and CacheErr are reported by the respective clear calls.
	StorageErr error
	CacheErr   error
	// Manual defers completion callbacks until Complete is called.
	Manual  bool
	pending []func()
}

var _ port.Session = (*Session)(nil)

// ClearStorageData implements port.Session.
func (s *Session) ClearStorageData(done func(err error)) {
	s.host.Record("session clear-storage")
	s.finish(func() { done(s.StorageErr) })
}

// ClearCache implements port.Session.
func (s *Session) ClearCache(done func(err error)) {
	s.host.Record("session clear-cache")
	s.finish(func() { done(s.CacheErr) })
}

func (s *Session) finish(fn func()) {
	if s.Manual {
		s.pending = append(s.pending, fn)
		return
	}
	fn()
}

// Complete runs the oldest deferred completion. It reports false when
// nothing was pending.
func (s *Session) Complete() bool {
	if len(s.pending) == 0 {
		return false
	}
	fn := s.pending[0]
	s.pending = s.pending[1:]
	fn()
	return true
}
