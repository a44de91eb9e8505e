package port

import "context"

// BadgeSink writes the dock/taskbar badge of the application.
type BadgeSink interface {
	// SetBadge shows text on the application icon. An empty text clears it.
	// When bounce is true the sink also requests user attention.
	SetBadge(ctx context.Context, text string, bounce bool) error
}

// MessageSource delivers messages posted by page-side scripts.
type MessageSource interface {
	// Subscribe registers handler for messages on channel and returns a
	// function that removes it.
	Subscribe(channel string, handler func(payload string)) (unsubscribe func())
}

// NotificationChannel is the page message channel signalling a new notification.
const NotificationChannel = "notification"

// ParamsChannel is the channel carrying the serialized options to page scripts.
const ParamsChannel = "params"
