package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/appshell/internal/application/port"
)

func TestEmitter_HandlersRunInRegistrationOrder(t *testing.T) {
	e := New()
	var order []string

	e.On(port.EventLoadFinished, func(*port.Event) { order = append(order, "first") })
	e.On(port.EventLoadFinished, func(*port.Event) { order = append(order, "second") })
	e.On(port.EventTitleUpdated, func(*port.Event) { order = append(order, "other kind") })
	e.On(port.EventLoadFinished, func(*port.Event) { order = append(order, "third") })

	e.Emit(&port.Event{Kind: port.EventLoadFinished})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestEmitter_OnceFiresOnlyOnce(t *testing.T) {
	e := New()
	calls := 0
	e.Once(port.EventResponseReceived, func(*port.Event) { calls++ })

	e.Emit(&port.Event{Kind: port.EventResponseReceived})
	e.Emit(&port.Event{Kind: port.EventResponseReceived})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, e.Count(port.EventResponseReceived))
}

func TestEmitter_OffStopsHandler(t *testing.T) {
	e := New()
	calls := 0
	id := e.On(port.EventFocused, func(*port.Event) { calls++ })
	require.NotZero(t, id)

	e.Emit(&port.Event{Kind: port.EventFocused})
	e.Off(id)
	e.Emit(&port.Event{Kind: port.EventFocused})

	assert.Equal(t, 1, calls)
	e.Off(id)
	e.Off(12345)
}

func TestEmitter_RemovalDuringDispatchSkipsLaterHandler(t *testing.T) {
	e := New()
	var second port.ListenerID
	ran := false

	e.On(port.EventLoadFinished, func(*port.Event) { e.Off(second) })
	second = e.On(port.EventLoadFinished, func(*port.Event) { ran = true })

	e.Emit(&port.Event{Kind: port.EventLoadFinished})

	assert.False(t, ran)
}

func TestEmitter_AdditionDuringDispatchWaitsForNextEvent(t *testing.T) {
	e := New()
	added := 0

	e.Once(port.EventNavigationStarted, func(*port.Event) {
		e.On(port.EventNavigationStarted, func(*port.Event) { added++ })
	})

	e.Emit(&port.Event{Kind: port.EventNavigationStarted})
	assert.Equal(t, 0, added)

	e.Emit(&port.Event{Kind: port.EventNavigationStarted})
	assert.Equal(t, 1, added)
}

func TestEmitter_EventStateIsSharedAcrossHandlers(t *testing.T) {
	e := New()
	e.On(port.EventCloseRequested, func(ev *port.Event) { ev.PreventDefault() })

	var seen bool
	e.On(port.EventCloseRequested, func(ev *port.Event) { seen = ev.DefaultPrevented() })

	ev := e.Emit(&port.Event{Kind: port.EventCloseRequested})

	assert.True(t, seen)
	assert.True(t, ev.DefaultPrevented())
}

func TestEmitter_NilHandlerIsIgnored(t *testing.T) {
	e := New()
	assert.Zero(t, e.On(port.EventClosed, nil))
	assert.Equal(t, 0, e.Count(port.EventClosed))
	assert.Nil(t, e.Emit(nil))
}

func TestEmitter_ClearRemovesEverything(t *testing.T) {
	e := New()
	calls := 0
	e.On(port.EventClosed, func(*port.Event) { calls++ })
	e.On(port.EventFocused, func(*port.Event) { calls++ })

	e.Clear()
	e.Emit(&port.Event{Kind: port.EventClosed})
	e.Emit(&port.Event{Kind: port.EventFocused})

	assert.Zero(t, calls)
}
