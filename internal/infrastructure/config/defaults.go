package config

import "github.com/bnema/appshell/internal/domain/entity"

// Default configuration constants
const (
	defaultAppName = "appshell"

	// Logging defaults
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultMaxSizeMB  = 10 // megabytes per file
	defaultMaxBackups = 3  // rotated files kept
)

// DefaultConfig returns the configuration written on first run.
// The target URL is left empty and must be set by the user.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         defaultAppName,
			InternalURLs: []string{},
		},
		Window: WindowConfig{
			Width:  entity.DefaultWindowWidth,
			Height: entity.DefaultWindowHeight,
		},
		Behavior: BehaviorConfig{
			Zoom: entity.ZoomDefault,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
		},
	}
}
