package usecase

import (
	"context"
	"sync"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/logging"
)

// InjectionState is the per-window state of the content injector.
type InjectionState int

const (
	// InjectionIdle means no navigation was observed yet.
	InjectionIdle InjectionState = iota
	// InjectionPending means a navigation started and the injector waits for
	// the first response of that load.
	InjectionPending
	// InjectionArmed means the current load was styled; the next navigation
	// arms the injector again.
	InjectionArmed
)

// String returns a human-readable representation of the state.
func (s InjectionState) String() string {
	switch s {
	case InjectionIdle:
		return "idle"
	case InjectionPending:
		return "pending"
	case InjectionArmed:
		return "armed"
	default:
		return "unknown"
	}
}

type injection struct {
	state    InjectionState
	listener port.ListenerID
}

// InjectContentUseCase inserts the configured stylesheet into every page
// exactly once per load, as early as the first network response so pages do
// not flash unstyled.
type InjectContentUseCase struct {
	style port.StyleSource

	mu      sync.Mutex
	windows map[port.WindowID]*injection
}

// NewInjectContentUseCase creates a content injector reading CSS from style.
func NewInjectContentUseCase(style port.StyleSource) *InjectContentUseCase {
	return &InjectContentUseCase{
		style:   style,
		windows: make(map[port.WindowID]*injection),
	}
}

// Attach wires the injector on w. It is a no-op when there is no stylesheet.
func (uc *InjectContentUseCase) Attach(ctx context.Context, w port.Window) {
	if uc.style == nil || uc.style.CSS(ctx) == "" {
		return
	}

	uc.mu.Lock()
	uc.windows[w.ID()] = &injection{state: InjectionIdle}
	uc.mu.Unlock()

	events := w.Events()
	events.On(port.EventNavigationStarted, func(*port.Event) {
		uc.onNavigationStarted(ctx, w)
	})
	events.On(port.EventLoadFinished, func(*port.Event) {
		uc.onLoadFinished(ctx, w)
	})
	events.On(port.EventClosed, func(*port.Event) {
		uc.mu.Lock()
		delete(uc.windows, w.ID())
		uc.mu.Unlock()
	})
}

// State returns the injector state of a window.
func (uc *InjectContentUseCase) State(id port.WindowID) InjectionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if inj, ok := uc.windows[id]; ok {
		return inj.state
	}
	return InjectionIdle
}

func (uc *InjectContentUseCase) onNavigationStarted(ctx context.Context, w port.Window) {
	uc.mu.Lock()
	inj, ok := uc.windows[w.ID()]
	if !ok || inj.state == InjectionPending {
		uc.mu.Unlock()
		return
	}
	inj.state = InjectionPending
	uc.mu.Unlock()

	// The Once listener is removed by the emitter before it runs, so further
	// responses of the same load cannot insert again.
	id := w.Events().Once(port.EventResponseReceived, func(*port.Event) {
		uc.mu.Lock()
		inj.listener = 0
		inj.state = InjectionArmed
		uc.mu.Unlock()
		uc.insert(ctx, w, "response")
	})

	uc.mu.Lock()
	inj.listener = id
	uc.mu.Unlock()
}

func (uc *InjectContentUseCase) onLoadFinished(ctx context.Context, w port.Window) {
	uc.mu.Lock()
	inj, ok := uc.windows[w.ID()]
	if !ok {
		uc.mu.Unlock()
		return
	}
	pending := inj.state == InjectionPending
	listener := inj.listener
	inj.listener = 0
	inj.state = InjectionArmed
	uc.mu.Unlock()

	if !pending {
		return
	}
	// No response was observed during this load: remove the listener first so
	// a late response cannot insert a second time, then style the page now.
	w.Events().Off(listener)
	uc.insert(ctx, w, "load-finished")
}

func (uc *InjectContentUseCase) insert(ctx context.Context, w port.Window, trigger string) {
	log := logging.FromContext(ctx)

	css := uc.style.CSS(ctx)
	if css == "" {
		return
	}
	if err := w.InsertCSS(ctx, css); err != nil {
		log.Warn().Err(err).Uint64("window_id", uint64(w.ID())).Msg("failed to insert css")
		return
	}
	log.Debug().
		Uint64("window_id", uint64(w.ID())).
		Str("trigger", trigger).
		Int("bytes", len(css)).
		Msg("css injected")
}
