package port

import "context"

// Tray is the system tray icon of the application.
type Tray interface {
	// Active reports whether the tray icon is currently shown.
	Active() bool
}

// ConfirmRequest describes a modal confirmation dialog.
type ConfirmRequest struct {
	Title   string
	Message string
	Detail  string
	// Buttons are rendered in order. DefaultButton and CancelButton index into it.
	Buttons       []string
	DefaultButton int
	CancelButton  int
	Warning       bool
}

// Confirmer shows modal confirmation dialogs.
type Confirmer interface {
	// Confirm displays req attached to parent (nil for an application modal)
	// and invokes callback with the index of the button the user chose.
	// Dismissing the dialog reports the cancel button.
	Confirm(ctx context.Context, parent Window, req ConfirmRequest, callback func(button int))
}

// Scheduler posts work onto the UI thread.
// Callbacks from background goroutines (tray, file watchers, D-Bus)
// must go through it before touching any window.
type Scheduler interface {
	Post(fn func())
}
