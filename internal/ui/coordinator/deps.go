package coordinator

import (
	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
)

// Dependencies holds all injected collaborators of the shell.
// This struct is created once at startup by the composition root.
type Dependencies struct {
	// Session options, read-only apart from the maximize migration.
	Options *entity.AppOptions

	// Windowing host
	Host      port.WindowHost
	Scheduler port.Scheduler
	Platform  port.Platform

	// Desktop integration
	Opener   port.ExternalOpener
	Badge    port.BadgeSink
	Messages port.MessageSource
	Tray     port.Tray // optional
	Confirm  port.Confirmer

	// Persistence
	Geometry port.GeometryStore // optional, defaults are used without it
	Markers  port.MarkerStore
	Writer   port.OptionsWriter

	// Content
	Style   port.StyleSource
	Icon    string
	Preload string

	// Menus, both optional
	Menu        port.MenuBuilder
	ContextMenu port.ContextMenu
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Options == nil {
		return ErrMissingDependency("Options")
	}
	if d.Host == nil {
		return ErrMissingDependency("Host")
	}
	if d.Scheduler == nil {
		return ErrMissingDependency("Scheduler")
	}
	if d.Platform == nil {
		return ErrMissingDependency("Platform")
	}
	if d.Confirm == nil {
		return ErrMissingDependency("Confirm")
	}
	// The maximize migration needs both stores.
	if d.Options.Maximize && (d.Markers == nil || d.Writer == nil) {
		return ErrMissingDependency("Markers/Writer")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
