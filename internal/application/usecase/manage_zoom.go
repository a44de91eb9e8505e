// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/logging"
)

// ManageZoomUseCase handles zoom commands on the focused window.
type ManageZoomUseCase struct {
	focus       port.FocusTracker
	defaultZoom float64
}

// NewManageZoomUseCase creates a new zoom management use case.
// defaultZoom is the zoom level to use when resetting (typically from config).
func NewManageZoomUseCase(focus port.FocusTracker, defaultZoom float64) *ManageZoomUseCase {
	if defaultZoom <= 0 {
		defaultZoom = entity.ZoomDefault
	}
	return &ManageZoomUseCase{
		focus:       focus,
		defaultZoom: defaultZoom,
	}
}

// DefaultZoom returns the configured default zoom level.
func (uc *ManageZoomUseCase) DefaultZoom() float64 {
	return uc.defaultZoom
}

// ZoomIn increases the focused window zoom by one step (0.1).
func (uc *ManageZoomUseCase) ZoomIn(ctx context.Context) {
	uc.adjust(ctx, "in", (*entity.ZoomLevel).ZoomIn)
}

// ZoomOut decreases the focused window zoom by one step (0.1).
func (uc *ManageZoomUseCase) ZoomOut(ctx context.Context) {
	uc.adjust(ctx, "out", (*entity.ZoomLevel).ZoomOut)
}

// ZoomReset restores exactly the configured zoom on the focused window.
func (uc *ManageZoomUseCase) ZoomReset(ctx context.Context) {
	w, ok := uc.focus.FocusedWindow()
	if !ok {
		return
	}
	w.SetZoomFactor(uc.defaultZoom)
	logging.FromContext(ctx).Debug().
		Uint64("window_id", uint64(w.ID())).
		Float64("zoom", uc.defaultZoom).
		Msg("zoom reset")
}

// adjust reads the current factor asynchronously and writes the stepped one.
// A later command may supersede an in-flight one; it is never aborted.
func (uc *ManageZoomUseCase) adjust(ctx context.Context, direction string, step func(*entity.ZoomLevel)) {
	w, ok := uc.focus.FocusedWindow()
	if !ok {
		return
	}
	w.ZoomFactor(func(current float64) {
		zoom := entity.NewZoomLevel(current)
		step(zoom)
		w.SetZoomFactor(zoom.ZoomFactor)

		logging.FromContext(ctx).Debug().
			Uint64("window_id", uint64(w.ID())).
			Str("direction", direction).
			Float64("from", current).
			Float64("to", zoom.ZoomFactor).
			Msg("zoom changed")
	})
}
