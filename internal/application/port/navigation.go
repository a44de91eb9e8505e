package port

import (
	"context"

	"github.com/bnema/appshell/internal/domain/entity"
)

// NavigationIntent describes one outbound navigation to route.
// It is built from a host event, routed synchronously and then dropped.
type NavigationIntent struct {
	TargetURL string
	// Initiator is the window whose content asked for the navigation.
	// Nil when the request comes from outside any page (e.g. a menu).
	Initiator   Window
	Disposition entity.Disposition
}

// WindowSpawner creates managed windows and tabs on behalf of the router.
type WindowSpawner interface {
	// CreateSecondary opens url in a new managed window.
	CreateSecondary(ctx context.Context, url string) (Window, error)
	// CreateTab opens url as a native tab of parent (or of the focused window
	// when parent is nil).
	CreateTab(ctx context.Context, parent Window, url string, foreground bool) (Window, error)
}

// ExternalOpener hands URLs to the system's default handler.
type ExternalOpener interface {
	OpenExternal(ctx context.Context, url string) error
}
