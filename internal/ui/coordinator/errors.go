package coordinator

import "errors"

var (
	// ErrPrimaryExists is returned when the primary window is created twice.
	ErrPrimaryExists = errors.New("primary window already exists")
	// ErrNoFocusedWindow is returned when an action needs a focused window
	// and none has focus.
	ErrNoFocusedWindow = errors.New("no focused window")
)
