package usecase

import (
	"context"
	"sync"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/logging"
)

// CloseState is the state of the primary window close coordinator.
type CloseState int

const (
	// CloseNormal accepts close requests.
	CloseNormal CloseState = iota
	// CloseAwaitingFullScreenExit cancels close requests until the window
	// left fullscreen.
	CloseAwaitingFullScreenExit
	// CloseClosing lets the window close.
	CloseClosing
)

// String returns a human-readable representation of the state.
func (s CloseState) String() string {
	switch s {
	case CloseNormal:
		return "normal"
	case CloseAwaitingFullScreenExit:
		return "awaiting-fullscreen-exit"
	case CloseClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// CloseWindowUseCase decides what closing the primary window means: leave
// fullscreen first, then either hide (dock or tray residency) or let the
// window close.
type CloseWindowUseCase struct {
	platform port.Platform
	tray     port.Tray
	fastQuit bool

	mu       sync.Mutex
	state    CloseState
	quitting bool
	onQuit   func()
	quit     sync.Once
}

// NewCloseWindowUseCase creates the close coordinator.
// tray may be nil when no tray icon is configured.
func NewCloseWindowUseCase(platform port.Platform, tray port.Tray, opts *entity.AppOptions) *CloseWindowUseCase {
	return &CloseWindowUseCase{
		platform: platform,
		tray:     tray,
		fastQuit: opts.FastQuit,
	}
}

// SetOnQuit registers a callback fired once when the primary window is
// allowed to close.
func (uc *CloseWindowUseCase) SetOnQuit(fn func()) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.onQuit = fn
}

// State returns the current coordinator state.
func (uc *CloseWindowUseCase) State() CloseState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Attach wires the coordinator on the primary window.
func (uc *CloseWindowUseCase) Attach(ctx context.Context, primary port.Window) port.ListenerID {
	ctx = logging.WithComponent(ctx, "close")
	return primary.Events().On(port.EventCloseRequested, func(ev *port.Event) {
		uc.HandleCloseRequest(ctx, primary, ev)
	})
}

// HandleCloseRequest processes one close request of the primary window.
func (uc *CloseWindowUseCase) HandleCloseRequest(ctx context.Context, w port.Window, ev *port.Event) {
	log := logging.FromContext(ctx)

	switch uc.State() {
	case CloseClosing:
		uc.allow(ctx)
		return
	case CloseAwaitingFullScreenExit:
		ev.PreventDefault()
		log.Debug().Msg("close ignored while leaving fullscreen")
		return
	}

	if w.IsFullScreen() {
		ev.PreventDefault()
		uc.leaveFullScreen(ctx, w)
		return
	}

	if uc.shouldHide() {
		ev.PreventDefault()
		w.Hide()
		log.Debug().Msg("close turned into hide")
		return
	}

	uc.setState(CloseClosing)
	uc.allow(ctx)
}

// Quit closes the primary window without hiding it. A fullscreen window
// leaves fullscreen first, the same way a close request does.
func (uc *CloseWindowUseCase) Quit(ctx context.Context, primary port.Window) {
	logging.FromContext(ctx).Info().Msg("quit requested")

	uc.mu.Lock()
	uc.quitting = true
	pending := uc.state == CloseAwaitingFullScreenExit
	uc.mu.Unlock()

	// The pending exit closes the window now that quitting is set.
	if pending {
		return
	}
	if primary.IsFullScreen() {
		uc.leaveFullScreen(ctx, primary)
		return
	}
	uc.setState(CloseClosing)
	primary.Close()
}

func (uc *CloseWindowUseCase) leaveFullScreen(ctx context.Context, w port.Window) {
	uc.setState(CloseAwaitingFullScreenExit)

	// Registered before the request: hosts may report the transition
	// synchronously.
	w.Events().Once(port.EventLeftFullScreen, func(*port.Event) {
		uc.afterFullScreenExit(ctx, w)
	})
	w.SetFullScreen(false)
	logging.FromContext(ctx).Debug().Msg("leaving fullscreen before close")
}

func (uc *CloseWindowUseCase) afterFullScreenExit(ctx context.Context, w port.Window) {
	log := logging.FromContext(ctx)

	if uc.platform != nil && uc.platform.NativeTabsSupported() {
		w.MoveTabToNewWindow()
	}

	if uc.shouldHide() {
		uc.setState(CloseNormal)
		w.Hide()
		log.Debug().Msg("close turned into hide after fullscreen exit")
		return
	}

	uc.setState(CloseClosing)
	w.Close()
}

func (uc *CloseWindowUseCase) shouldHide() bool {
	uc.mu.Lock()
	quitting := uc.quitting
	uc.mu.Unlock()

	if uc.fastQuit || quitting {
		return false
	}
	if uc.platform != nil && uc.platform.IsMacOS() {
		return true
	}
	return uc.tray != nil && uc.tray.Active()
}

func (uc *CloseWindowUseCase) allow(ctx context.Context) {
	uc.mu.Lock()
	onQuit := uc.onQuit
	uc.mu.Unlock()

	uc.quit.Do(func() {
		logging.FromContext(ctx).Info().Msg("primary window closing")
		if onQuit != nil {
			onQuit()
		}
	})
}

func (uc *CloseWindowUseCase) setState(s CloseState) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = s
}
