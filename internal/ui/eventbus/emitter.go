// Package eventbus provides the ordered per-window event dispatcher used by
// host adapters and the in-memory test host.
package eventbus

import (
	"sync"

	"github.com/bnema/appshell/internal/application/port"
)

// listener wraps a handler so it can be removed by identity while a dispatch
// is in progress.
type listener struct {
	id      port.ListenerID
	kind    port.EventKind
	fn      port.EventHandler
	once    bool
	removed bool
}

// Emitter implements port.EventSource.
// Handlers for one kind run in registration order. A handler removed during
// a dispatch does not run later in that dispatch; a handler added during a
// dispatch first runs on the next event.
type Emitter struct {
	mu        sync.Mutex
	nextID    port.ListenerID
	listeners map[port.EventKind][]*listener
	byID      map[port.ListenerID]*listener
}

var _ port.EventSource = (*Emitter)(nil)

// New creates an empty emitter.
func New() *Emitter {
	return &Emitter{
		listeners: make(map[port.EventKind][]*listener),
		byID:      make(map[port.ListenerID]*listener),
	}
}

// On implements port.EventSource.
func (e *Emitter) On(kind port.EventKind, handler port.EventHandler) port.ListenerID {
	return e.add(kind, handler, false)
}

// Once implements port.EventSource.
func (e *Emitter) Once(kind port.EventKind, handler port.EventHandler) port.ListenerID {
	return e.add(kind, handler, true)
}

func (e *Emitter) add(kind port.EventKind, handler port.EventHandler, once bool) port.ListenerID {
	if handler == nil {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	l := &listener{id: e.nextID, kind: kind, fn: handler, once: once}
	e.listeners[kind] = append(e.listeners[kind], l)
	e.byID[l.id] = l
	return l.id
}

// Off implements port.EventSource.
func (e *Emitter) Off(id port.ListenerID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(id)
}

func (e *Emitter) removeLocked(id port.ListenerID) {
	l, ok := e.byID[id]
	if !ok {
		return
	}
	l.removed = true
	delete(e.byID, id)

	list := e.listeners[l.kind]
	for i, candidate := range list {
		if candidate == l {
			e.listeners[l.kind] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(e.listeners[l.kind]) == 0 {
		delete(e.listeners, l.kind)
	}
}

// Emit dispatches ev to every handler registered for ev.Kind and returns ev
// so callers can inspect cancellation and guest replacement.
func (e *Emitter) Emit(ev *port.Event) *port.Event {
	if ev == nil {
		return nil
	}

	e.mu.Lock()
	snapshot := make([]*listener, len(e.listeners[ev.Kind]))
	copy(snapshot, e.listeners[ev.Kind])
	e.mu.Unlock()

	for _, l := range snapshot {
		e.mu.Lock()
		if l.removed {
			e.mu.Unlock()
			continue
		}
		if l.once {
			e.removeLocked(l.id)
		}
		e.mu.Unlock()

		l.fn(ev)
	}
	return ev
}

// Count returns the number of live handlers for kind.
func (e *Emitter) Count(kind port.EventKind) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[kind])
}

// Clear removes every handler. Hosts call it when the window is destroyed.
func (e *Emitter) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, l := range e.byID {
		l.removed = true
	}
	e.listeners = make(map[port.EventKind][]*listener)
	e.byID = make(map[port.ListenerID]*listener)
}
