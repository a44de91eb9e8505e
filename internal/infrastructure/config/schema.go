package config

// Config represents the complete configuration of a wrapped application.
type Config struct {
	App    AppConfig    `mapstructure:"app" toml:"app"`
	Window WindowConfig `mapstructure:"window" toml:"window"`
	// Behavior holds content and lifecycle switches fixed at build time.
	Behavior BehaviorConfig `mapstructure:"behavior" toml:"behavior"`
	Inject   InjectConfig   `mapstructure:"inject" toml:"inject"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
}

// AppConfig identifies the wrapped site.
type AppConfig struct {
	// Name is the application name, also used as the native tab group.
	Name    string `mapstructure:"name" toml:"name"`
	Version string `mapstructure:"version" toml:"version"`
	// TargetURL is the site loaded in the primary window.
	TargetURL string `mapstructure:"target_url" toml:"target_url"`
	// InternalURLs lists extra hosts or glob patterns treated as part of the app.
	InternalURLs []string `mapstructure:"internal_urls" toml:"internal_urls"`
	// Icon is the window icon path.
	Icon string `mapstructure:"icon" toml:"icon"`
}

// WindowConfig describes the primary window. Zero sizes mean "no constraint".
type WindowConfig struct {
	Width     int  `mapstructure:"width" toml:"width"`
	Height    int  `mapstructure:"height" toml:"height"`
	MinWidth  int  `mapstructure:"min_width" toml:"min_width"`
	MinHeight int  `mapstructure:"min_height" toml:"min_height"`
	MaxWidth  int  `mapstructure:"max_width" toml:"max_width"`
	MaxHeight int  `mapstructure:"max_height" toml:"max_height"`
	X         *int `mapstructure:"x" toml:"x,omitempty"`
	Y         *int `mapstructure:"y" toml:"y,omitempty"`

	HideWindowFrame bool `mapstructure:"hide_window_frame" toml:"hide_window_frame"`
	ShowMenuBar     bool `mapstructure:"show_menu_bar" toml:"show_menu_bar"`
	FullScreen      bool `mapstructure:"full_screen" toml:"full_screen"`
	AlwaysOnTop     bool `mapstructure:"always_on_top" toml:"always_on_top"`
	// Maximize starts the window maximized once, then is cleared on disk.
	Maximize bool `mapstructure:"maximize" toml:"maximize"`
}

// BehaviorConfig holds content and lifecycle switches.
type BehaviorConfig struct {
	// Zoom is the build-time zoom factor (1.0 = 100%).
	Zoom               float64 `mapstructure:"zoom" toml:"zoom"`
	UserAgent          string  `mapstructure:"user_agent" toml:"user_agent"`
	Insecure           bool    `mapstructure:"insecure" toml:"insecure"`
	Counter            bool    `mapstructure:"counter" toml:"counter"`
	Bounce             bool    `mapstructure:"bounce" toml:"bounce"`
	FastQuit           bool    `mapstructure:"fast_quit" toml:"fast_quit"`
	Tray               bool    `mapstructure:"tray" toml:"tray"`
	DisableDevTools    bool    `mapstructure:"disable_dev_tools" toml:"disable_dev_tools"`
	DisableContextMenu bool    `mapstructure:"disable_context_menu" toml:"disable_context_menu"`
}

// InjectConfig points at content injected into every page.
type InjectConfig struct {
	// CSSFile is the stylesheet inserted after each load. Empty means the
	// default inject/inject.css next to the config file.
	CSSFile string `mapstructure:"css_file" toml:"css_file"`
	// Preload is a script run before page scripts.
	Preload string `mapstructure:"preload" toml:"preload"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level"`
	Format        string `mapstructure:"format" toml:"format"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
}

// DatabaseConfig locates the state database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}
