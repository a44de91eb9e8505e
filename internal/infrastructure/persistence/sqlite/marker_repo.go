package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/appshell/internal/application/port"
)

// Marker is one recorded one-time migration.
type Marker struct {
	Name      string
	CreatedAt time.Time
}

// MarkerRepository records one-time migrations.
type MarkerRepository struct {
	db *sql.DB
}

var _ port.MarkerStore = (*MarkerRepository)(nil)

// NewMarkerRepository creates a new SQLite-backed marker store.
func NewMarkerRepository(db *sql.DB) *MarkerRepository {
	return &MarkerRepository{db: db}
}

// Has implements port.MarkerStore.
func (r *MarkerRepository) Has(ctx context.Context, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM markers WHERE name = ?`, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check marker %q: %w", name, err)
	}
	return n > 0, nil
}

// Set implements port.MarkerStore. Setting an existing marker keeps its
// original timestamp.
func (r *MarkerRepository) Set(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO markers (name, created_at) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`,
		name, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set marker %q: %w", name, err)
	}
	return nil
}

// Clear implements port.MarkerStore.
func (r *MarkerRepository) Clear(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM markers WHERE name = ?`, name); err != nil {
		return fmt.Errorf("clear marker %q: %w", name, err)
	}
	return nil
}

// List returns every marker, oldest first.
func (r *MarkerRepository) List(ctx context.Context) ([]Marker, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, created_at FROM markers ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("list markers: %w", err)
	}
	defer rows.Close()

	var markers []Marker
	for rows.Next() {
		var m Marker
		if err := rows.Scan(&m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan marker: %w", err)
		}
		markers = append(markers, m)
	}
	return markers, rows.Err()
}
