package port

// Platform answers capability questions about the running desktop.
// Implementations are pure queries and hold no state.
type Platform interface {
	// IsMacOS reports whether the application runs on a macOS-like platform
	// where closing the last window keeps the app resident in the dock.
	IsMacOS() bool
	// NativeTabsSupported reports whether the host can group windows into
	// native tabs.
	NativeTabsSupported() bool
}
