package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	domainurl "github.com/bnema/appshell/internal/domain/url"
	"github.com/bnema/appshell/internal/logging"
	"github.com/spf13/viper"
)

// ErrConfigNotLoaded is returned by operations that need a loaded config.
var ErrConfigNotLoaded = errors.New("configuration not loaded")

// Manager handles configuration loading, watching, and persisting.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// skipNextReload ignores the file event caused by our own write.
	skipNextReload bool
}

var _ port.OptionsWriter = (*Manager)(nil)

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// APPSHELL_APP_TARGET_URL, APPSHELL_BEHAVIOR_ZOOM, ...
	v.SetEnvPrefix("APPSHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", logging.EnvLogLevel); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", logging.EnvLogLevel, err)
	}
	if err := v.BindEnv("logging.format", logging.EnvLogFormat); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", logging.EnvLogFormat, err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensurePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// ensurePaths fills path settings left empty with their XDG locations.
func ensurePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Inject.CSSFile == "" {
		cssPath, err := GetDefaultCSSFile()
		if err != nil {
			return fmt.Errorf("failed to get inject css path: %w", err)
		}
		config.Inject.CSSFile = cssPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.App.Name = strings.TrimSpace(config.App.Name)
	config.App.TargetURL = domainurl.Normalize(config.App.TargetURL)
	if config.App.Name == "" || config.App.Name == defaultAppName {
		if domain := domainurl.ExtractDomain(config.App.TargetURL); domain != "" {
			config.App.Name = domain
		}
	}

	patterns := config.App.InternalURLs[:0]
	for _, p := range config.App.InternalURLs {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	config.App.InternalURLs = patterns

	if config.Behavior.Zoom <= 0 {
		config.Behavior.Zoom = entity.ZoomDefault
	}
	config.Behavior.UserAgent = strings.TrimSpace(config.Behavior.UserAgent)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() (*Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return nil, ErrConfigNotLoaded
	}
	configCopy := *m.config
	configCopy.App.InternalURLs = append([]string(nil), m.config.App.InternalURLs...)
	return &configCopy, nil
}

// ConfigFile returns the path to the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, _ := GetConfigFile()
	return path
}

// PersistOptions implements port.OptionsWriter. It folds the session options
// back into the loaded config and rewrites the file.
func (m *Manager) PersistOptions(ctx context.Context, opts *entity.AppOptions) error {
	if opts == nil {
		return errors.New("options are nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return ErrConfigNotLoaded
	}

	updated := *m.config
	updated.ApplyOptions(opts)
	if err := validateConfig(&updated); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.ConfigFile()
	if err := WriteConfigOrdered(&updated, path); err != nil {
		return err
	}

	m.config = &updated
	if m.watching {
		m.skipNextReload = true
	}
	logging.FromContext(ctx).Debug().Str("file", path).Msg("options persisted to config")
	return nil
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("app.name", defaults.App.Name)
	m.viper.SetDefault("app.version", defaults.App.Version)
	m.viper.SetDefault("app.target_url", defaults.App.TargetURL)
	m.viper.SetDefault("app.internal_urls", defaults.App.InternalURLs)
	m.viper.SetDefault("app.icon", defaults.App.Icon)

	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
	m.viper.SetDefault("window.min_width", defaults.Window.MinWidth)
	m.viper.SetDefault("window.min_height", defaults.Window.MinHeight)
	m.viper.SetDefault("window.max_width", defaults.Window.MaxWidth)
	m.viper.SetDefault("window.max_height", defaults.Window.MaxHeight)
	m.viper.SetDefault("window.hide_window_frame", defaults.Window.HideWindowFrame)
	m.viper.SetDefault("window.show_menu_bar", defaults.Window.ShowMenuBar)
	m.viper.SetDefault("window.full_screen", defaults.Window.FullScreen)
	m.viper.SetDefault("window.always_on_top", defaults.Window.AlwaysOnTop)
	m.viper.SetDefault("window.maximize", defaults.Window.Maximize)

	m.viper.SetDefault("behavior.zoom", defaults.Behavior.Zoom)
	m.viper.SetDefault("behavior.user_agent", defaults.Behavior.UserAgent)
	m.viper.SetDefault("behavior.insecure", defaults.Behavior.Insecure)
	m.viper.SetDefault("behavior.counter", defaults.Behavior.Counter)
	m.viper.SetDefault("behavior.bounce", defaults.Behavior.Bounce)
	m.viper.SetDefault("behavior.fast_quit", defaults.Behavior.FastQuit)
	m.viper.SetDefault("behavior.tray", defaults.Behavior.Tray)
	m.viper.SetDefault("behavior.disable_dev_tools", defaults.Behavior.DisableDevTools)
	m.viper.SetDefault("behavior.disable_context_menu", defaults.Behavior.DisableContextMenu)

	m.viper.SetDefault("inject.css_file", defaults.Inject.CSSFile)
	m.viper.SetDefault("inject.preload", defaults.Inject.Preload)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.viper.SetDefault("database.path", defaults.Database.Path)
}
