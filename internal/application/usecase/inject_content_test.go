package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/testutil/fakehost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSS = "body { background: #111; }"

func newInjectedWindow(t *testing.T, style port.StyleSource) (*InjectContentUseCase, *fakehost.Window) {
	t.Helper()
	host := fakehost.New()
	w, err := host.CreateWindow(context.Background(), port.WindowOptions{})
	require.NoError(t, err)

	uc := NewInjectContentUseCase(style)
	uc.Attach(testCtx(), w)
	return uc, w.(*fakehost.Window)
}

func TestInjectContent_OncePerLoadRegardlessOfResponses(t *testing.T) {
	uc, w := newInjectedWindow(t, staticStyle(testCSS))

	w.StartNavigation("https://mail.example.com/")
	assert.Equal(t, InjectionPending, uc.State(w.ID()))
	for i := 0; i < 5; i++ {
		w.ReceiveResponse("https://mail.example.com/asset.js")
	}
	w.FinishLoad()

	assert.Equal(t, []string{testCSS}, w.InsertedCSS())
	assert.Equal(t, InjectionArmed, uc.State(w.ID()))
	assert.Equal(t, 0, w.Listeners(port.EventResponseReceived))
}

func TestInjectContent_RenavigationInjectsExactlyOnceMore(t *testing.T) {
	_, w := newInjectedWindow(t, staticStyle(testCSS))

	w.StartNavigation("https://mail.example.com/")
	w.ReceiveResponse("")
	w.FinishLoad()

	w.StartNavigation("https://mail.example.com/inbox")
	w.ReceiveResponse("")
	w.ReceiveResponse("")
	w.FinishLoad()

	assert.Len(t, w.InsertedCSS(), 2)
}

func TestInjectContent_RepeatedNavigationStartKeepsOneListener(t *testing.T) {
	_, w := newInjectedWindow(t, staticStyle(testCSS))

	w.StartNavigation("https://mail.example.com/a")
	w.StartNavigation("https://mail.example.com/b")
	w.StartNavigation("https://mail.example.com/c")
	assert.Equal(t, 1, w.Listeners(port.EventResponseReceived))

	w.ReceiveResponse("")
	w.ReceiveResponse("")

	assert.Len(t, w.InsertedCSS(), 1)
}

func TestInjectContent_LoadWithoutResponsesInjectsAtFinish(t *testing.T) {
	_, w := newInjectedWindow(t, staticStyle(testCSS))

	w.StartNavigation("https://mail.example.com/")
	w.FinishLoad()
	// A late response of the finished load must not insert again.
	w.ReceiveResponse("")

	assert.Len(t, w.InsertedCSS(), 1)
	assert.Equal(t, 0, w.Listeners(port.EventResponseReceived))
}

func TestInjectContent_LoadFinishedWithoutNavigationDoesNothing(t *testing.T) {
	uc, w := newInjectedWindow(t, staticStyle(testCSS))

	w.FinishLoad()

	assert.Empty(t, w.InsertedCSS())
	assert.Equal(t, InjectionArmed, uc.State(w.ID()))
}

func TestInjectContent_EmptyStyleIsNoop(t *testing.T) {
	uc, w := newInjectedWindow(t, staticStyle(""))

	w.StartNavigation("https://mail.example.com/")
	w.ReceiveResponse("")
	w.FinishLoad()

	assert.Empty(t, w.InsertedCSS())
	assert.Equal(t, 0, w.Listeners(port.EventNavigationStarted))
	assert.Equal(t, InjectionIdle, uc.State(w.ID()))
}

func TestInjectContent_InsertFailureIsLogged(t *testing.T) {
	uc, w := newInjectedWindow(t, staticStyle(testCSS))
	w.CSSErr = errors.New("renderer crashed")

	w.StartNavigation("https://mail.example.com/")
	w.ReceiveResponse("")
	w.FinishLoad()

	assert.Empty(t, w.InsertedCSS())
	assert.Equal(t, InjectionArmed, uc.State(w.ID()))
}

func TestInjectContent_ClosedWindowIsForgotten(t *testing.T) {
	uc, w := newInjectedWindow(t, staticStyle(testCSS))
	w.StartNavigation("https://mail.example.com/")

	w.Close()

	assert.Equal(t, InjectionIdle, uc.State(w.ID()))
}

func TestInjectionState_String(t *testing.T) {
	assert.Equal(t, "idle", InjectionIdle.String())
	assert.Equal(t, "pending", InjectionPending.String())
	assert.Equal(t, "armed", InjectionArmed.String())
}
