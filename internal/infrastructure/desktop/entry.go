package desktop

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bnema/appshell/internal/logging"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// desktopEntryTemplate is the freedesktop.org desktop entry format.
const desktopEntryTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=%s
Comment=%s
Exec=%s
Icon=%s
Terminal=false
Categories=Network;
StartupNotify=true
StartupWMClass=%s
`

var nonIDChars = regexp.MustCompile(`[^a-z0-9]+`)

// EntrySpec describes the wrapped application for its desktop entry.
type EntrySpec struct {
	Name      string
	TargetURL string
	// Icon is an icon path or theme name. Empty uses the app ID.
	Icon string
	// Exec overrides the launched command. Empty uses this executable.
	Exec string
}

// EntryStatus reports whether the desktop entry is installed.
type EntryStatus struct {
	Path      string
	Installed bool
	AppURI    string
}

// Entries manages the desktop entry of the wrapped app.
type Entries struct {
	updateDesktopDB string
}

// NewEntries creates a desktop entry manager.
func NewEntries() *Entries {
	e := &Entries{}
	if path, err := exec.LookPath("update-desktop-database"); err == nil {
		e.updateDesktopDB = path
	}
	return e
}

// AppID derives the desktop file ID from the app name ("Team Chat" ->
// "appshell-team-chat").
func AppID(name string) string {
	slug := strings.Trim(nonIDChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		return "appshell"
	}
	return "appshell-" + slug
}

// AppURI is the launcher URI used by dock badge protocols.
func AppURI(name string) string {
	return "application://" + AppID(name) + ".desktop"
}

func applicationsDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "applications"), nil
}

func entryPath(name string) (string, error) {
	dir, err := applicationsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppID(name)+".desktop"), nil
}

func executablePath() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot find executable: %w", err)
	}
	if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
		execPath = resolved
	}
	return execPath, nil
}

// Status checks whether the entry for name is installed.
func (e *Entries) Status(ctx context.Context, name string) (*EntryStatus, error) {
	path, err := entryPath(name)
	if err != nil {
		return nil, err
	}
	status := &EntryStatus{Path: path, AppURI: AppURI(name)}
	if _, statErr := os.Stat(path); statErr == nil {
		status.Installed = true
	}
	logging.FromContext(ctx).Debug().
		Str("path", path).
		Bool("installed", status.Installed).
		Msg("desktop entry status")
	return status, nil
}

// Install writes the desktop entry and returns its path.
func (e *Entries) Install(ctx context.Context, spec EntrySpec) (string, error) {
	log := logging.FromContext(ctx)

	execLine := spec.Exec
	if execLine == "" {
		execPath, err := executablePath()
		if err != nil {
			return "", err
		}
		execLine = execPath
	}
	icon := spec.Icon
	if icon == "" {
		icon = AppID(spec.Name)
	}

	path, err := entryPath(spec.Name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return "", fmt.Errorf("create applications dir: %w", err)
	}

	content := fmt.Sprintf(desktopEntryTemplate,
		spec.Name,
		spec.TargetURL,
		execLine,
		icon,
		AppID(spec.Name),
	)
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("write desktop file: %w", err)
	}
	log.Info().Str("path", path).Msg("desktop entry installed")

	e.refresh(ctx, filepath.Dir(path))
	return path, nil
}

// Remove deletes the desktop entry. Removing a missing entry is a no-op.
func (e *Entries) Remove(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)

	path, err := entryPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("desktop entry not found (already removed)")
			return nil
		}
		return fmt.Errorf("remove desktop file: %w", err)
	}
	log.Info().Str("path", path).Msg("desktop entry removed")

	e.refresh(ctx, filepath.Dir(path))
	return nil
}

func (e *Entries) refresh(ctx context.Context, dir string) {
	if e.updateDesktopDB == "" {
		return
	}
	if err := exec.CommandContext(ctx, e.updateDesktopDB, dir).Run(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("update-desktop-database failed (non-fatal)")
	}
}
