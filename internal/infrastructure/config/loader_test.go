package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG base at a temp dir and returns the config dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "cache"))
	return filepath.Join(base, "config", appDirName)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const mailConfig = `
[app]
target_url = "mail.example.com/inbox"
internal_urls = ["*.gstatic.com", "  "]

[window]
width = 1000
maximize = true

[behavior]
counter = true
`

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "appshell", mgr.viper.GetString("app.name"))
	assert.Equal(t, 1280, mgr.viper.GetInt("window.width"))
	assert.InDelta(t, 1.0, mgr.viper.GetFloat64("behavior.zoom"), 1e-9)
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestManager_LoadReadsAndNormalizes(t *testing.T) {
	dir := isolateXDG(t)
	writeConfig(t, dir, mailConfig)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg, err := mgr.Get()
	require.NoError(t, err)
	assert.Equal(t, "https://mail.example.com/inbox", cfg.App.TargetURL)
	assert.Equal(t, "mail.example.com", cfg.App.Name)
	assert.Equal(t, []string{"*.gstatic.com"}, cfg.App.InternalURLs)
	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.True(t, cfg.Window.Maximize)
	assert.True(t, cfg.Behavior.Counter)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_DATA_HOME"), appDirName, dbFileName), cfg.Database.Path)
	assert.Equal(t, filepath.Join(dir, "inject", "inject.css"), cfg.Inject.CSSFile)
	assert.Equal(t, filepath.Join(dir, configFileName), mgr.ConfigFile())
}

func TestManager_EnvironmentOverrides(t *testing.T) {
	dir := isolateXDG(t)
	writeConfig(t, dir, mailConfig)
	t.Setenv("APPSHELL_BEHAVIOR_ZOOM", "1.5")
	t.Setenv("APPSHELL_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg, err := mgr.Get()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, cfg.Behavior.Zoom, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_FirstRunWritesDefaultFile(t *testing.T) {
	dir := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.target_url is required")
	assert.FileExists(t, filepath.Join(dir, configFileName))
}

func TestManager_NotLoaded(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)

	_, err = mgr.Get()
	assert.ErrorIs(t, err, ErrConfigNotLoaded)

	cfg := DefaultConfig()
	err = mgr.PersistOptions(context.Background(), cfg.AppOptions())
	assert.ErrorIs(t, err, ErrConfigNotLoaded)

	assert.ErrorIs(t, mgr.Watch(), ErrConfigNotLoaded)
}

func TestManager_PersistOptionsRewritesFile(t *testing.T) {
	dir := isolateXDG(t)
	writeConfig(t, dir, mailConfig)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg, err := mgr.Get()
	require.NoError(t, err)
	opts := cfg.AppOptions()
	opts.Maximize = false
	require.NoError(t, mgr.PersistOptions(context.Background(), opts))

	current, err := mgr.Get()
	require.NoError(t, err)
	assert.False(t, current.Window.Maximize)

	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	fromDisk, err := reloaded.Get()
	require.NoError(t, err)
	assert.False(t, fromDisk.Window.Maximize)
	assert.True(t, fromDisk.Behavior.Counter)
	assert.Equal(t, "https://mail.example.com/inbox", fromDisk.App.TargetURL)
}

func TestManager_PersistOptionsRejectsInvalid(t *testing.T) {
	dir := isolateXDG(t)
	path := writeConfig(t, dir, mailConfig)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg, err := mgr.Get()
	require.NoError(t, err)
	opts := cfg.AppOptions()
	opts.Zoom = 40

	err = mgr.PersistOptions(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "behavior.zoom")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mailConfig, string(content))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.App.TargetURL = "  chat.example.org "
	cfg.Behavior.Zoom = 0
	cfg.Logging.Level = " DEBUG "
	cfg.Logging.Format = ""

	normalizeConfig(cfg)

	assert.Equal(t, "https://chat.example.org", cfg.App.TargetURL)
	assert.Equal(t, "chat.example.org", cfg.App.Name)
	assert.InDelta(t, 1.0, cfg.Behavior.Zoom, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestNormalizeConfig_KeepsExplicitName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.App.Name = "Team Chat"
	cfg.App.TargetURL = "https://chat.example.org"

	normalizeConfig(cfg)

	assert.Equal(t, "Team Chat", cfg.App.Name)
}
