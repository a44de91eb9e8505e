package entity

import "math"

// ZoomLevel represents the zoom factor currently applied to a window.
type ZoomLevel struct {
	ZoomFactor float64 // Zoom factor (1.0 = 100%, 1.5 = 150%)
}

// Default zoom constants
const (
	ZoomDefault = 1.0
	ZoomMin     = 0.25 // 25%
	ZoomMax     = 5.0  // 500%
	ZoomStep    = 0.1  // 10% increments
)

// NewZoomLevel creates a zoom level, clamping to the valid range.
func NewZoomLevel(factor float64) *ZoomLevel {
	return &ZoomLevel{ZoomFactor: clampZoom(factor)}
}

// SetFactor updates the zoom factor, clamping to valid range.
func (z *ZoomLevel) SetFactor(factor float64) {
	z.ZoomFactor = clampZoom(factor)
}

// ZoomIn increases the zoom factor by one step.
func (z *ZoomLevel) ZoomIn() {
	z.SetFactor(z.ZoomFactor + ZoomStep)
}

// ZoomOut decreases the zoom factor by one step.
func (z *ZoomLevel) ZoomOut() {
	z.SetFactor(z.ZoomFactor - ZoomStep)
}

// Percentage returns the zoom factor as a percentage (e.g., 150 for 1.5).
func (z *ZoomLevel) Percentage() int {
	return int(math.Round(z.ZoomFactor * 100))
}

// clampZoom constrains a zoom factor to the valid range and drops the
// floating point noise accumulated by repeated 0.1 steps.
func clampZoom(factor float64) float64 {
	if factor < ZoomMin {
		return ZoomMin
	}
	if factor > ZoomMax {
		return ZoomMax
	}
	return math.Round(factor*1000) / 1000
}
