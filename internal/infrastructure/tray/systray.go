// Package tray keeps the application resident in the system tray.
package tray

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/logging"
	"github.com/energye/systray"
)

// Options configures the tray icon.
type Options struct {
	Title   string
	Tooltip string
	// Icon holds PNG (ICO on Windows) bytes. Nil keeps the platform default.
	Icon []byte
}

// Actions are the tray commands. They run on the UI thread.
type Actions struct {
	Show func()
	Quit func()
}

// backend is the slice of the systray API the tray drives.
type backend interface {
	Run(onReady, onExit func())
	Stop()
	SetIcon(icon []byte)
	SetTitle(title string)
	SetTooltip(tooltip string)
	AddItem(title, tooltip string, onClick func())
	AddSeparator()
	SetOnClick(onClick func())
}

var _ port.Tray = (*Systray)(nil)

// Systray implements port.Tray.
type Systray struct {
	opts      Options
	actions   Actions
	scheduler port.Scheduler
	backend   backend

	active  atomic.Bool
	started bool
	mu      sync.Mutex
}

// New creates a tray backed by energye/systray.
func New(opts Options, scheduler port.Scheduler, actions Actions) *Systray {
	return newSystray(opts, scheduler, actions, &energyeBackend{})
}

func newSystray(opts Options, scheduler port.Scheduler, actions Actions, b backend) *Systray {
	return &Systray{opts: opts, actions: actions, scheduler: scheduler, backend: b}
}

// Active implements port.Tray.
func (s *Systray) Active() bool {
	return s.active.Load()
}

// Start shows the tray icon. Calling Start twice is a no-op.
func (s *Systray) Start(ctx context.Context) {
	ctx = logging.WithComponent(ctx, "tray")
	log := logging.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	s.backend.Run(func() {
		s.setup()
		s.active.Store(true)
		log.Debug().Str("title", s.opts.Title).Msg("tray icon ready")
	}, func() {
		s.active.Store(false)
		log.Debug().Msg("tray icon removed")
	})
}

func (s *Systray) setup() {
	if len(s.opts.Icon) > 0 {
		s.backend.SetIcon(s.opts.Icon)
	}
	s.backend.SetTitle(s.opts.Title)
	s.backend.SetTooltip(s.opts.Tooltip)

	s.backend.SetOnClick(s.post(s.actions.Show))
	s.backend.AddItem("Show", "Show the main window", s.post(s.actions.Show))
	s.backend.AddSeparator()
	s.backend.AddItem("Quit", "Quit "+s.opts.Title, s.post(s.actions.Quit))
}

// post moves a tray callback onto the UI thread.
func (s *Systray) post(fn func()) func() {
	return func() {
		if fn == nil {
			return
		}
		if s.scheduler == nil {
			fn()
			return
		}
		s.scheduler.Post(fn)
	}
}

// Stop removes the tray icon.
func (s *Systray) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.active.Store(false)
	s.backend.Stop()
}

type energyeBackend struct {
	end func()
}

func (b *energyeBackend) Run(onReady, onExit func()) {
	start, end := systray.RunWithExternalLoop(onReady, onExit)
	b.end = end
	start()
}

func (b *energyeBackend) Stop() {
	if b.end != nil {
		b.end()
		b.end = nil
	}
}

func (b *energyeBackend) SetIcon(icon []byte)       { systray.SetIcon(icon) }
func (b *energyeBackend) SetTitle(title string)     { systray.SetTitle(title) }
func (b *energyeBackend) SetTooltip(tooltip string) { systray.SetTooltip(tooltip) }
func (b *energyeBackend) AddSeparator()             { systray.AddSeparator() }

func (b *energyeBackend) AddItem(title, tooltip string, onClick func()) {
	item := systray.AddMenuItem(title, tooltip)
	item.Click(onClick)
}

func (b *energyeBackend) SetOnClick(onClick func()) {
	systray.SetOnClick(func(systray.IMenu) { onClick() })
}
