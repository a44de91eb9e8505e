// Package badge writes the application badge to the desktop dock via the
// Unity LauncherEntry D-Bus protocol (supported by GNOME Dash-to-Dock,
// KDE Plasma task manager and Plank).
package badge

import (
	"context"
	"fmt"
	"hash/crc32"
	"strconv"
	"sync"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/logging"
	"github.com/godbus/dbus/v5"
)

const (
	launcherEntryIface  = "com.canonical.Unity.LauncherEntry"
	launcherEntryUpdate = launcherEntryIface + ".Update"
	launcherEntryPrefix = "/com/canonical/unity/launcherentry/"
)

// signalEmitter is the part of *dbus.Conn the sink needs.
type signalEmitter interface {
	Emit(path dbus.ObjectPath, name string, values ...interface{}) error
}

var _ port.BadgeSink = (*LauncherEntry)(nil)

// LauncherEntry implements port.BadgeSink over the session bus.
// Without a bus every update is a logged no-op.
type LauncherEntry struct {
	appURI string
	path   dbus.ObjectPath

	mu   sync.Mutex
	conn signalEmitter
}

// NewLauncherEntry connects to the session bus. appURI identifies the
// desktop entry, e.g. "application://appshell-mail.desktop".
func NewLauncherEntry(ctx context.Context, appURI string) *LauncherEntry {
	log := logging.FromContext(ctx)

	entry := newLauncherEntry(appURI, nil)
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("badge: cannot connect to D-Bus session bus")
		return entry
	}
	entry.conn = conn
	return entry
}

func newLauncherEntry(appURI string, conn signalEmitter) *LauncherEntry {
	return &LauncherEntry{
		appURI: appURI,
		path:   dbus.ObjectPath(launcherEntryPrefix + strconv.FormatUint(uint64(crc32.ChecksumIEEE([]byte(appURI))), 10)),
		conn:   conn,
	}
}

// SetBadge implements port.BadgeSink. Numeric text is shown as a count,
// any other non-empty text only marks the entry urgent.
func (l *LauncherEntry) SetBadge(ctx context.Context, text string, bounce bool) error {
	log := logging.FromContext(ctx)

	l.mu.Lock()
	conn := l.conn
	l.mu.Unlock()
	if conn == nil {
		log.Debug().Str("badge", text).Msg("badge: no session bus, skipping")
		return nil
	}

	props := Properties(text, bounce)
	if err := conn.Emit(l.path, launcherEntryUpdate, l.appURI, props); err != nil {
		return fmt.Errorf("emit launcher entry update: %w", err)
	}

	log.Debug().
		Str("app_uri", l.appURI).
		Str("badge", text).
		Bool("urgent", bounce).
		Msg("badge: launcher entry updated")
	return nil
}

// Close releases the bus connection.
func (l *LauncherEntry) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	conn, ok := l.conn.(*dbus.Conn)
	l.conn = nil
	if !ok || conn == nil {
		return nil
	}
	return conn.Close()
}

// Properties builds the LauncherEntry property map for a badge text.
func Properties(text string, bounce bool) map[string]dbus.Variant {
	count, err := strconv.ParseInt(text, 10, 64)
	hasCount := err == nil && count > 0
	if !hasCount {
		count = 0
	}
	urgent := bounce || (text != "" && !hasCount && err != nil)

	return map[string]dbus.Variant{
		"count":         dbus.MakeVariant(count),
		"count-visible": dbus.MakeVariant(hasCount),
		"urgent":        dbus.MakeVariant(urgent),
	}
}
