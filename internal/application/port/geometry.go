package port

import (
	"context"

	"github.com/bnema/appshell/internal/domain/entity"
)

// GeometryStore persists the primary window geometry between launches.
type GeometryStore interface {
	// Load returns the saved geometry, or the provided defaults when nothing
	// was saved yet.
	Load(ctx context.Context, defaults entity.WindowGeometry) (*entity.WindowGeometry, error)
	Save(ctx context.Context, geometry *entity.WindowGeometry) error
}

// MarkerStore records one-time migrations that already ran.
type MarkerStore interface {
	Has(ctx context.Context, name string) (bool, error)
	Set(ctx context.Context, name string) error
	Clear(ctx context.Context, name string) error
}

// OptionsWriter persists AppOptions back to the configuration file.
type OptionsWriter interface {
	PersistOptions(ctx context.Context, opts *entity.AppOptions) error
}
