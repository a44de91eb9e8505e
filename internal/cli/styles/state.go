package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/appshell/internal/domain/entity"
)

// StateMarker is one recorded one-time migration.
type StateMarker struct {
	Name      string
	CreatedAt time.Time
}

// StateRenderer renders the persisted window state.
type StateRenderer struct {
	theme *Theme
}

// NewStateRenderer creates a new state renderer.
func NewStateRenderer(theme *Theme) *StateRenderer {
	return &StateRenderer{theme: theme}
}

// Render renders geometry and markers.
func (r *StateRenderer) Render(dbPath string, g *entity.WindowGeometry, markers []StateMarker) string {
	const keyWidth = 12
	t := r.theme

	position := t.Subtle.Render("centered")
	if g.X != nil && g.Y != nil {
		position = fmt.Sprintf("%d,%d", *g.X, *g.Y)
	}

	lines := []string{
		t.BoxHeader.Render(IconDatabase+" window state") + " " + t.Subtle.Render(dbPath),
		t.KeyValue("size", fmt.Sprintf("%dx%d", g.Width, g.Height), keyWidth),
		t.KeyValue("position", position, keyWidth),
		t.KeyValue("maximized", fmt.Sprintf("%t", g.Maximized), keyWidth),
		t.KeyValue("fullscreen", fmt.Sprintf("%t", g.FullScreen), keyWidth),
	}
	if !g.UpdatedAt.IsZero() {
		lines = append(lines, t.KeyValue("saved", g.UpdatedAt.Local().Format(time.DateTime), keyWidth))
	}

	lines = append(lines, "", t.Subtitle.Render("markers"))
	if len(markers) == 0 {
		lines = append(lines, "  "+t.Subtle.Render("none"))
	}
	markerWidth := keyWidth
	for _, m := range markers {
		markerWidth = max(markerWidth, lipgloss.Width(m.Name)+1)
	}
	for _, m := range markers {
		lines = append(lines, t.KeyValue(m.Name, m.CreatedAt.Local().Format(time.DateTime), markerWidth))
	}
	return strings.Join(lines, "\n")
}
