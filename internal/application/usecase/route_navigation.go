package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	domainurl "github.com/bnema/appshell/internal/domain/url"
	"github.com/bnema/appshell/internal/logging"
)

// ErrNoSpawner is returned when routing needs a window but none can be created.
var ErrNoSpawner = errors.New("navigation router has no window spawner")

// RouteDecision is the single outcome of routing one navigation intent.
type RouteDecision struct {
	Action entity.RouteAction
	// Window is the tab or window created for the navigation, if any.
	Window port.Window
}

// RouteNavigationUseCase decides where an outbound navigation opens:
// a native tab, the system browser, or a new managed window.
type RouteNavigationUseCase struct {
	classifier *domainurl.Classifier
	platform   port.Platform
	opener     port.ExternalOpener
	spawner    port.WindowSpawner
}

// NewRouteNavigationUseCase creates the navigation router.
// The spawner is set afterwards with SetSpawner because the window factory
// itself depends on the router.
func NewRouteNavigationUseCase(
	classifier *domainurl.Classifier,
	platform port.Platform,
	opener port.ExternalOpener,
) *RouteNavigationUseCase {
	return &RouteNavigationUseCase{
		classifier: classifier,
		platform:   platform,
		opener:     opener,
	}
}

// SetSpawner wires the component that creates windows and tabs.
func (uc *RouteNavigationUseCase) SetSpawner(spawner port.WindowSpawner) {
	uc.spawner = spawner
}

// Route resolves intent to exactly one action, first match wins:
//  1. native tabs available and a tab disposition: open a tab
//  2. external URL: hand it to the system browser
//  3. otherwise: open a new managed window
func (uc *RouteNavigationUseCase) Route(ctx context.Context, intent port.NavigationIntent) (RouteDecision, error) {
	log := logging.FromContext(ctx)

	if uc.nativeTabs() && intent.Disposition.IsTab() {
		foreground := intent.Disposition == entity.DispositionForegroundTab
		action := entity.RouteBackgroundTab
		if foreground {
			action = entity.RouteForegroundTab
		}
		if uc.spawner == nil {
			return RouteDecision{Action: action}, ErrNoSpawner
		}

		tab, err := uc.spawner.CreateTab(ctx, intent.Initiator, intent.TargetURL, foreground)
		if err != nil {
			return RouteDecision{Action: action}, fmt.Errorf("open %s: %w", action, err)
		}
		log.Debug().
			Str("url", intent.TargetURL).
			Str("action", action.String()).
			Msg("navigation routed to tab")
		return RouteDecision{Action: action, Window: tab}, nil
	}

	if !uc.classifier.IsInternal(intent.TargetURL) {
		if uc.opener != nil {
			if err := uc.opener.OpenExternal(ctx, intent.TargetURL); err != nil {
				log.Warn().Err(err).Str("url", intent.TargetURL).Msg("failed to open external url")
			}
		}
		log.Debug().Str("url", intent.TargetURL).Msg("navigation routed to system browser")
		return RouteDecision{Action: entity.RouteExternal}, nil
	}

	if uc.spawner == nil {
		return RouteDecision{Action: entity.RouteNewWindow}, ErrNoSpawner
	}
	w, err := uc.spawner.CreateSecondary(ctx, intent.TargetURL)
	if err != nil {
		return RouteDecision{Action: entity.RouteNewWindow}, fmt.Errorf("open new window: %w", err)
	}
	log.Debug().
		Str("url", intent.TargetURL).
		Str("disposition", intent.Disposition.String()).
		Msg("navigation routed to new window")
	return RouteDecision{Action: entity.RouteNewWindow, Window: w}, nil
}

// HandleNewWindow intercepts a new-window request raised by initiator.
// The host's default action is always cancelled before routing; a window
// created for the request becomes the event's guest.
func (uc *RouteNavigationUseCase) HandleNewWindow(ctx context.Context, initiator port.Window, ev *port.Event) {
	ev.PreventDefault()

	decision, err := uc.Route(ctx, port.NavigationIntent{
		TargetURL:   ev.URL,
		Initiator:   initiator,
		Disposition: ev.Disposition,
	})
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("url", ev.URL).Msg("failed to route navigation")
		return
	}
	if decision.Action == entity.RouteNewWindow && decision.Window != nil {
		ev.SetGuest(decision.Window)
	}
}

// Attach intercepts every new-window request raised by w.
func (uc *RouteNavigationUseCase) Attach(ctx context.Context, w port.Window) port.ListenerID {
	return w.Events().On(port.EventNewWindowRequested, func(ev *port.Event) {
		uc.HandleNewWindow(ctx, w, ev)
	})
}

// OpenInNewWindow opens url in a new managed window regardless of its
// classification. It backs the context menu's "open in new window".
func (uc *RouteNavigationUseCase) OpenInNewWindow(ctx context.Context, url string) {
	if uc.spawner == nil {
		return
	}
	if _, err := uc.spawner.CreateSecondary(ctx, url); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("url", url).Msg("failed to open new window")
	}
}

// OpenInNewTab opens url as a foreground tab of the focused window.
func (uc *RouteNavigationUseCase) OpenInNewTab(ctx context.Context, url string) {
	if uc.spawner == nil {
		return
	}
	if _, err := uc.spawner.CreateTab(ctx, nil, url, true); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("url", url).Msg("failed to open new tab")
	}
}

// NativeTabs reports whether tab dispositions are honoured.
func (uc *RouteNavigationUseCase) NativeTabs() bool {
	return uc.nativeTabs()
}

func (uc *RouteNavigationUseCase) nativeTabs() bool {
	return uc.platform != nil && uc.platform.NativeTabsSupported()
}
