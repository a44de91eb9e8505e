package config

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	appDirName     = "appshell"
	configFileName = "config.toml"
	dbFileName     = "appshell.db"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the base directories of the XDG layout.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
	CacheHome  string
}

// GetXDGDirs resolves the XDG base directories for the application.
// With ENV=dev every directory lives under ./.dev/appshell.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		base, err := filepath.Abs(filepath.Join(".dev", appDirName))
		if err != nil {
			return nil, err
		}
		return &XDGDirs{
			ConfigHome: filepath.Join(base, "config"),
			DataHome:   filepath.Join(base, "data"),
			StateHome:  filepath.Join(base, "state"),
			CacheHome:  filepath.Join(base, "cache"),
		}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil && (os.Getenv("XDG_CONFIG_HOME") == "" || os.Getenv("XDG_DATA_HOME") == "") {
		return nil, errors.Join(errors.New("cannot resolve home directory"), err)
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(xdgBase("XDG_CONFIG_HOME", home, ".config"), appDirName),
		DataHome:   filepath.Join(xdgBase("XDG_DATA_HOME", home, ".local", "share"), appDirName),
		StateHome:  filepath.Join(xdgBase("XDG_STATE_HOME", home, ".local", "state"), appDirName),
		CacheHome:  filepath.Join(xdgBase("XDG_CACHE_HOME", home, ".cache"), appDirName),
	}, nil
}

func xdgBase(env, home string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" && filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// GetConfigDir returns the directory holding config.toml.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the directory holding the state database.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetStateDir returns the directory holding logs.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetConfigFile returns the path of config.toml.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetDatabaseFile returns the default state database path.
func GetDatabaseFile() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFileName), nil
}

// GetLogDir returns the default directory for log files.
func GetLogDir() (string, error) {
	dir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

// GetDefaultCSSFile returns inject/inject.css next to the config file.
func GetDefaultCSSFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "inject", "inject.css"), nil
}

// EnsureDirectories creates the config, data and state directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
