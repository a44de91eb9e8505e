package entity

import "time"

// WindowGeometry is the persisted position and size of a window.
// X and Y are nil until the window has been placed once.
type WindowGeometry struct {
	X, Y          *int
	Width, Height int
	Maximized     bool
	FullScreen    bool
	UpdatedAt     time.Time
}

// Bounds is a window rectangle as reported by the host.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Degenerate reports whether the rectangle has no usable area.
func (b Bounds) Degenerate() bool {
	return b.Width <= 0 || b.Height <= 0
}

// DefaultGeometry returns the geometry used before anything was persisted.
func DefaultGeometry(width, height int) *WindowGeometry {
	if width <= 0 {
		width = DefaultWindowWidth
	}
	if height <= 0 {
		height = DefaultWindowHeight
	}
	return &WindowGeometry{Width: width, Height: height}
}

// Apply records new bounds. Bounds of a maximized or fullscreen window are
// ignored so that restoring goes back to the last normal size.
func (g *WindowGeometry) Apply(b Bounds, maximized, fullScreen bool) {
	g.Maximized = maximized
	g.FullScreen = fullScreen
	if maximized || fullScreen || b.Degenerate() {
		return
	}
	x, y := b.X, b.Y
	g.X, g.Y = &x, &y
	g.Width, g.Height = b.Width, b.Height
}
