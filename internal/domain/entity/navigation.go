package entity

// Disposition is the host's hint about where an outbound navigation wants to open.
type Disposition int

const (
	// DispositionSameWindow targets the initiating frame.
	DispositionSameWindow Disposition = iota
	// DispositionBackgroundTab opens a tab without stealing focus (e.g. middle click).
	DispositionBackgroundTab
	// DispositionForegroundTab opens a tab and focuses it (e.g. cmd+click).
	DispositionForegroundTab
	// DispositionNewWindow opens a separate window (target="_blank", window.open).
	DispositionNewWindow
)

// String returns the host-side name of the disposition.
func (d Disposition) String() string {
	switch d {
	case DispositionSameWindow:
		return "default"
	case DispositionBackgroundTab:
		return "background-tab"
	case DispositionForegroundTab:
		return "foreground-tab"
	case DispositionNewWindow:
		return "new-window"
	default:
		return "unknown"
	}
}

// IsTab reports whether the hint asks for a tab.
func (d Disposition) IsTab() bool {
	return d == DispositionBackgroundTab || d == DispositionForegroundTab
}

// ParseDisposition maps host disposition names to a Disposition.
// Unknown names map to DispositionNewWindow.
func ParseDisposition(name string) Disposition {
	switch name {
	case "default", "same-window", "":
		return DispositionSameWindow
	case "background-tab":
		return DispositionBackgroundTab
	case "foreground-tab":
		return DispositionForegroundTab
	default:
		return DispositionNewWindow
	}
}

// RouteAction is the single action chosen for a navigation intent.
type RouteAction int

const (
	// RouteNone means nothing was done (e.g. no window to attach a tab to).
	RouteNone RouteAction = iota
	// RouteBackgroundTab opened a tab and kept focus on the initiator.
	RouteBackgroundTab
	// RouteForegroundTab opened a tab and focused it.
	RouteForegroundTab
	// RouteExternal handed the URL to the system browser.
	RouteExternal
	// RouteNewWindow spawned a managed window.
	RouteNewWindow
)

// String returns a human-readable name for the action.
func (a RouteAction) String() string {
	switch a {
	case RouteNone:
		return "none"
	case RouteBackgroundTab:
		return "background-tab"
	case RouteForegroundTab:
		return "foreground-tab"
	case RouteExternal:
		return "external"
	case RouteNewWindow:
		return "new-window"
	default:
		return "unknown"
	}
}
