// Package entity defines domain entities for the application shell.
package entity

// Default window dimensions used when no geometry has been persisted yet.
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800
)

// AppOptions is the per-session configuration of the wrapped application.
// It is loaded once at startup and treated as read-only, with one exception:
// the Maximize flag is cleared by the one-time maximize migration.
type AppOptions struct {
	Name      string `json:"name"`
	Version   string `json:"nativefierVersion"`
	TargetURL string `json:"targetUrl"`

	// InternalURLs lists extra hosts or glob patterns considered part of the app.
	InternalURLs []string `json:"internalUrls,omitempty"`

	Width     int  `json:"width,omitempty"`
	Height    int  `json:"height,omitempty"`
	MinWidth  int  `json:"minWidth,omitempty"`
	MinHeight int  `json:"minHeight,omitempty"`
	MaxWidth  int  `json:"maxWidth,omitempty"`
	MaxHeight int  `json:"maxHeight,omitempty"`
	X         *int `json:"x,omitempty"`
	Y         *int `json:"y,omitempty"`

	Zoom      float64 `json:"zoom"`
	UserAgent string  `json:"userAgent,omitempty"`

	Insecure           bool `json:"insecure"`
	HideWindowFrame    bool `json:"hideWindowFrame"`
	ShowMenuBar        bool `json:"showMenuBar"`
	FullScreen         bool `json:"fullScreen"`
	AlwaysOnTop        bool `json:"alwaysOnTop"`
	Maximize           bool `json:"maximize,omitempty"`
	Counter            bool `json:"counter"`
	Bounce             bool `json:"bounce"`
	FastQuit           bool `json:"fastQuit"`
	Tray               bool `json:"tray"`
	DisableDevTools    bool `json:"disableDevTools"`
	DisableContextMenu bool `json:"disableContextMenu"`
}

// DefaultWidth returns the configured width or the built-in default.
func (o *AppOptions) DefaultWidth() int {
	if o.Width > 0 {
		return o.Width
	}
	return DefaultWindowWidth
}

// DefaultHeight returns the configured height or the built-in default.
func (o *AppOptions) DefaultHeight() int {
	if o.Height > 0 {
		return o.Height
	}
	return DefaultWindowHeight
}

// BuildTimeZoom returns the configured zoom, falling back to 100%.
func (o *AppOptions) BuildTimeZoom() float64 {
	if o.Zoom <= 0 {
		return ZoomDefault
	}
	return o.Zoom
}

// Clone returns a deep copy so callers can derive a modified snapshot
// without touching the session copy.
func (o *AppOptions) Clone() *AppOptions {
	if o == nil {
		return nil
	}
	c := *o
	if o.InternalURLs != nil {
		c.InternalURLs = append([]string(nil), o.InternalURLs...)
	}
	if o.X != nil {
		x := *o.X
		c.X = &x
	}
	if o.Y != nil {
		y := *o.Y
		c.Y = &y
	}
	return &c
}
