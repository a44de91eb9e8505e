package usecase

import (
	"context"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// staticStyle is a fixed stylesheet.
type staticStyle string

func (s staticStyle) CSS(context.Context) string { return string(s) }

// focusStub reports a fixed focused window.
type focusStub struct {
	w port.Window
}

func (f *focusStub) FocusedWindow() (port.Window, bool) {
	return f.w, f.w != nil
}
