package port

import "context"

// StyleSource provides the stylesheet injected into every page.
type StyleSource interface {
	// CSS returns the current stylesheet. An empty string disables injection.
	CSS(ctx context.Context) string
}
