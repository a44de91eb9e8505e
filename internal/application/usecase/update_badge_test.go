package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/application/port/mocks"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/testutil/fakehost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBadgeFixture(t *testing.T, opts *entity.AppOptions) (*UpdateBadgeUseCase, *mocks.MockBadgeSink, *fakehost.Messages, *fakehost.Window) {
	t.Helper()
	sink := mocks.NewMockBadgeSink(t)
	messages := fakehost.NewMessages()
	host := fakehost.New()
	w, err := host.CreateWindow(context.Background(), port.WindowOptions{})
	require.NoError(t, err)

	uc := NewUpdateBadgeUseCase(sink, messages, opts)
	uc.Attach(testCtx(), w)
	return uc, sink, messages, w.(*fakehost.Window)
}

func TestUpdateBadge_CounterMode(t *testing.T) {
	uc, sink, _, w := newBadgeFixture(t, &entity.AppOptions{Counter: true})
	require.Equal(t, entity.BadgeModeCounter, uc.Mode())

	sink.EXPECT().SetBadge(mock.Anything, "7", false).Return(nil).Once()
	sink.EXPECT().SetBadge(mock.Anything, "12", false).Return(nil).Once()
	sink.EXPECT().SetBadge(mock.Anything, "", false).Return(nil).Once()

	w.SetTitle("Inbox (7)")
	assert.Equal(t, "7", uc.Badge())
	w.SetTitle("Updates [12+]")
	assert.Equal(t, "12", uc.Badge())
	w.SetTitle("No count here")
	assert.Equal(t, "", uc.Badge())
	// Already cleared: the sink is not called again.
	w.SetTitle("Still nothing")
}

func TestUpdateBadge_CounterModeBounces(t *testing.T) {
	_, sink, _, w := newBadgeFixture(t, &entity.AppOptions{Counter: true, Bounce: true})

	sink.EXPECT().SetBadge(mock.Anything, "99", true).Return(nil).Twice()

	w.SetTitle("(99+)")
	w.SetTitle("(99+) Inbox")
}

func TestUpdateBadge_CounterModeIgnoresNotifications(t *testing.T) {
	_, _, messages, _ := newBadgeFixture(t, &entity.AppOptions{Counter: true})

	messages.Post(port.NotificationChannel, "")

	assert.Equal(t, 0, messages.Subscribers(port.NotificationChannel))
}

func TestUpdateBadge_NotificationMode(t *testing.T) {
	uc, sink, messages, w := newBadgeFixture(t, &entity.AppOptions{})
	require.Equal(t, entity.BadgeModeNotification, uc.Mode())

	// Focused: the badge stays cleared.
	w.Focus()
	messages.Post(port.NotificationChannel, "")
	assert.Equal(t, "", uc.Badge())

	// Unfocused: the marker appears.
	sink.EXPECT().SetBadge(mock.Anything, entity.NotificationMarker, false).Return(nil).Once()
	w.Blur()
	messages.Post(port.NotificationChannel, "")
	assert.Equal(t, entity.NotificationMarker, uc.Badge())

	// Focus clears it.
	sink.EXPECT().SetBadge(mock.Anything, "", false).Return(nil).Once()
	w.Focus()
	assert.Equal(t, "", uc.Badge())
}

func TestUpdateBadge_NotificationModeIgnoresTitles(t *testing.T) {
	_, _, _, w := newBadgeFixture(t, &entity.AppOptions{})

	w.SetTitle("Inbox (3)")

	assert.Equal(t, 0, w.Listeners(port.EventTitleUpdated))
}

func TestUpdateBadge_SinkFailureKeepsPreviousValue(t *testing.T) {
	uc, sink, _, _ := newBadgeFixture(t, &entity.AppOptions{Counter: true})
	sink.EXPECT().SetBadge(mock.Anything, "4", false).Return(errors.New("no dock")).Once()

	uc.OnTitle(testCtx(), "Inbox (4)")

	assert.Equal(t, "", uc.Badge())
}

func TestUpdateBadge_DetachStopsUpdates(t *testing.T) {
	sink := mocks.NewMockBadgeSink(t)
	messages := fakehost.NewMessages()
	host := fakehost.New()
	w, err := host.CreateWindow(context.Background(), port.WindowOptions{})
	require.NoError(t, err)

	uc := NewUpdateBadgeUseCase(sink, messages, &entity.AppOptions{})
	detach := uc.Attach(testCtx(), w)
	detach()

	messages.Post(port.NotificationChannel, "")
	assert.Equal(t, 0, messages.Subscribers(port.NotificationChannel))
	assert.Equal(t, 0, w.(*fakehost.Window).Listeners(port.EventFocused))
}
