package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/logging"
)

// GeometryRepository stores the single primary window geometry row.
type GeometryRepository struct {
	db *sql.DB
}

var _ port.GeometryStore = (*GeometryRepository)(nil)

// NewGeometryRepository creates a new SQLite-backed geometry store.
func NewGeometryRepository(db *sql.DB) *GeometryRepository {
	return &GeometryRepository{db: db}
}

// Load implements port.GeometryStore. A missing or unusable row yields a
// copy of defaults.
func (r *GeometryRepository) Load(ctx context.Context, defaults entity.WindowGeometry) (*entity.WindowGeometry, error) {
	const query = `SELECT x, y, width, height, maximized, full_screen, updated_at
		FROM window_geometry WHERE id = 1`

	var (
		x, y                  sql.NullInt64
		width, height         int
		maximized, fullScreen bool
		updatedAt             time.Time
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&x, &y, &width, &height, &maximized, &fullScreen, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load window geometry: %w", err)
	}

	if width <= 0 || height <= 0 {
		logging.FromContext(ctx).Warn().
			Int("width", width).
			Int("height", height).
			Msg("ignoring degenerate saved geometry")
		return &defaults, nil
	}

	g := &entity.WindowGeometry{
		Width:      width,
		Height:     height,
		Maximized:  maximized,
		FullScreen: fullScreen,
		UpdatedAt:  updatedAt,
	}
	if x.Valid && y.Valid {
		xv, yv := int(x.Int64), int(y.Int64)
		g.X, g.Y = &xv, &yv
	}
	return g, nil
}

// Save implements port.GeometryStore.
func (r *GeometryRepository) Save(ctx context.Context, g *entity.WindowGeometry) error {
	if g == nil {
		return errors.New("geometry is nil")
	}

	const query = `INSERT INTO window_geometry (id, x, y, width, height, maximized, full_screen, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			x = excluded.x,
			y = excluded.y,
			width = excluded.width,
			height = excluded.height,
			maximized = excluded.maximized,
			full_screen = excluded.full_screen,
			updated_at = excluded.updated_at`

	updatedAt := g.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		nullableInt(g.X), nullableInt(g.Y),
		g.Width, g.Height,
		g.Maximized, g.FullScreen,
		updatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("save window geometry: %w", err)
	}
	return nil
}

// Reset forgets the saved geometry.
func (r *GeometryRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM window_geometry`); err != nil {
		return fmt.Errorf("reset window geometry: %w", err)
	}
	return nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
