package entity

// NotificationMarker is the badge shown for unread notifications.
const NotificationMarker = "•"

// BadgeMode selects how the badge is derived for the whole session.
type BadgeMode int

const (
	// BadgeModeNotification sets a marker on page notifications.
	BadgeModeNotification BadgeMode = iota
	// BadgeModeCounter mirrors a count found in the page title.
	BadgeModeCounter
)

// String returns a human-readable name for the mode.
func (m BadgeMode) String() string {
	if m == BadgeModeCounter {
		return "counter"
	}
	return "notification"
}

// BadgeModeFor picks the mode from the counter flag.
func BadgeModeFor(counter bool) BadgeMode {
	if counter {
		return BadgeModeCounter
	}
	return BadgeModeNotification
}
