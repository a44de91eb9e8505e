package usecase

import (
	"context"
	"sync"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/badge"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/logging"
)

// UpdateBadgeUseCase mirrors unread activity onto the dock/taskbar badge.
// The mode is fixed at construction: counter mode parses page titles,
// notification mode reacts to page notification messages.
type UpdateBadgeUseCase struct {
	sink     port.BadgeSink
	messages port.MessageSource
	mode     entity.BadgeMode
	bounce   bool

	mu      sync.Mutex
	current string
}

// NewUpdateBadgeUseCase creates the badge bridge for opts.
func NewUpdateBadgeUseCase(sink port.BadgeSink, messages port.MessageSource, opts *entity.AppOptions) *UpdateBadgeUseCase {
	return &UpdateBadgeUseCase{
		sink:     sink,
		messages: messages,
		mode:     entity.BadgeModeFor(opts.Counter),
		bounce:   opts.Bounce,
	}
}

// Mode returns the badge mode selected at startup.
func (uc *UpdateBadgeUseCase) Mode() entity.BadgeMode {
	return uc.mode
}

// Badge returns the last badge text written to the sink.
func (uc *UpdateBadgeUseCase) Badge() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current
}

// Attach wires the bridge on the primary window and returns a function that
// detaches it.
func (uc *UpdateBadgeUseCase) Attach(ctx context.Context, primary port.Window) func() {
	ctx = logging.WithComponent(ctx, "badge")
	events := primary.Events()

	if uc.mode == entity.BadgeModeCounter {
		id := events.On(port.EventTitleUpdated, func(ev *port.Event) {
			uc.OnTitle(ctx, ev.Title)
		})
		return func() { events.Off(id) }
	}

	var unsubscribe func()
	if uc.messages != nil {
		unsubscribe = uc.messages.Subscribe(port.NotificationChannel, func(string) {
			uc.OnNotification(ctx, primary.IsFocused())
		})
	}
	id := events.On(port.EventFocused, func(*port.Event) {
		uc.set(ctx, "", false)
	})
	return func() {
		events.Off(id)
		if unsubscribe != nil {
			unsubscribe()
		}
	}
}

// OnTitle applies a title change in counter mode: a counter sets the badge,
// anything else clears it.
func (uc *UpdateBadgeUseCase) OnTitle(ctx context.Context, title string) {
	if count, ok := badge.ParseCounter(title); ok {
		uc.set(ctx, count, uc.bounce)
		return
	}
	uc.set(ctx, "", false)
}

// OnNotification applies a page notification in notification mode.
// Nothing changes while the primary window has focus.
func (uc *UpdateBadgeUseCase) OnNotification(ctx context.Context, focused bool) {
	if focused {
		return
	}
	uc.set(ctx, entity.NotificationMarker, uc.bounce)
}

func (uc *UpdateBadgeUseCase) set(ctx context.Context, text string, bounce bool) {
	uc.mu.Lock()
	unchanged := uc.current == text
	uc.mu.Unlock()
	if unchanged && !bounce {
		return
	}

	log := logging.FromContext(ctx)
	if uc.sink == nil {
		return
	}
	if err := uc.sink.SetBadge(ctx, text, bounce); err != nil {
		log.Warn().Err(err).Str("badge", text).Msg("failed to update badge")
		return
	}

	uc.mu.Lock()
	uc.current = text
	uc.mu.Unlock()
	log.Debug().Str("badge", text).Bool("bounce", bounce).Msg("badge updated")
}
