package usecase

import (
	"context"
	"testing"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/testutil/fakehost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newZoomWindow(t *testing.T, zoom float64) *fakehost.Window {
	t.Helper()
	host := fakehost.New()
	w, err := host.CreateWindow(context.Background(), port.WindowOptions{
		WebPreferences: port.WebPreferences{ZoomFactor: zoom},
	})
	require.NoError(t, err)
	return w.(*fakehost.Window)
}

func TestManageZoom_InAndOutStepByTenPercent(t *testing.T) {
	w := newZoomWindow(t, 1.0)
	uc := NewManageZoomUseCase(&focusStub{w: w}, 1.0)

	uc.ZoomIn(testCtx())
	uc.ZoomIn(testCtx())
	assert.InDelta(t, 1.2, w.Zoom(), 1e-9)

	uc.ZoomOut(testCtx())
	assert.InDelta(t, 1.1, w.Zoom(), 1e-9)
}

func TestManageZoom_ResetRestoresExactBuildTimeValue(t *testing.T) {
	const buildTime = 1.37
	w := newZoomWindow(t, buildTime)
	uc := NewManageZoomUseCase(&focusStub{w: w}, buildTime)

	for i := 0; i < 7; i++ {
		uc.ZoomIn(testCtx())
	}
	uc.ZoomOut(testCtx())
	uc.ZoomReset(testCtx())

	assert.Equal(t, buildTime, w.Zoom())
}

func TestManageZoom_Clamped(t *testing.T) {
	w := newZoomWindow(t, entity.ZoomMax)
	uc := NewManageZoomUseCase(&focusStub{w: w}, 1.0)

	uc.ZoomIn(testCtx())

	assert.Equal(t, entity.ZoomMax, w.Zoom())
}

func TestManageZoom_NoFocusedWindowIsNoop(t *testing.T) {
	uc := NewManageZoomUseCase(&focusStub{}, 0)

	uc.ZoomIn(testCtx())
	uc.ZoomOut(testCtx())
	uc.ZoomReset(testCtx())

	assert.Equal(t, entity.ZoomDefault, uc.DefaultZoom())
}

func TestManageZoom_ResolvesFocusPerCall(t *testing.T) {
	first := newZoomWindow(t, 1.0)
	second := newZoomWindow(t, 1.0)
	focus := &focusStub{w: first}
	uc := NewManageZoomUseCase(focus, 1.0)

	uc.ZoomIn(testCtx())
	focus.w = second
	uc.ZoomOut(testCtx())

	assert.InDelta(t, 1.1, first.Zoom(), 1e-9)
	assert.InDelta(t, 0.9, second.Zoom(), 1e-9)
}
