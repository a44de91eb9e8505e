package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/logging"
)

// MarkerMaximizedOnce records that the start-maximized flag was applied.
const MarkerMaximizedOnce = "maximized-once"

// MaximizeOnceUseCase applies the "start maximized" option a single time.
// Later launches restore the last user geometry instead.
type MaximizeOnceUseCase struct {
	markers port.MarkerStore
	writer  port.OptionsWriter
}

// NewMaximizeOnceUseCase creates the migration.
func NewMaximizeOnceUseCase(markers port.MarkerStore, writer port.OptionsWriter) *MaximizeOnceUseCase {
	return &MaximizeOnceUseCase{markers: markers, writer: writer}
}

// Apply maximizes w when opts asks for it and the migration did not run yet,
// then persists opts with Maximize cleared and stores the marker.
// It reports whether the window was maximized. Persist errors are returned.
func (uc *MaximizeOnceUseCase) Apply(ctx context.Context, w port.Window, opts *entity.AppOptions) (bool, error) {
	if !opts.Maximize {
		return false, nil
	}

	done, err := uc.markers.Has(ctx, MarkerMaximizedOnce)
	if err != nil {
		return false, fmt.Errorf("check maximize marker: %w", err)
	}
	if done {
		return false, nil
	}

	w.Maximize()

	updated := opts.Clone()
	updated.Maximize = false
	if err := uc.writer.PersistOptions(ctx, updated); err != nil {
		return true, fmt.Errorf("persist options without maximize: %w", err)
	}
	if err := uc.markers.Set(ctx, MarkerMaximizedOnce); err != nil {
		return true, fmt.Errorf("store maximize marker: %w", err)
	}

	logging.FromContext(ctx).Info().Msg("start-maximized applied once")
	return true, nil
}
