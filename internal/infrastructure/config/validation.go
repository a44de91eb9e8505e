package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/appshell/internal/domain/entity"
	domainurl "github.com/bnema/appshell/internal/domain/url"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateApp(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateBehavior(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateApp(config *Config) []string {
	var validationErrors []string
	if config.App.Name == "" {
		validationErrors = append(validationErrors, "app.name must not be empty")
	}

	target := config.App.TargetURL
	if target == "" {
		validationErrors = append(validationErrors, "app.target_url is required")
	} else if u, err := url.Parse(target); err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		validationErrors = append(validationErrors,
			fmt.Sprintf("app.target_url must be an absolute http(s) URL, got %q", target))
	}

	for i, pattern := range config.App.InternalURLs {
		if !domainurl.ValidPattern(pattern) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("app.internal_urls[%d] is not a valid host or glob pattern: %q", i, pattern))
		}
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	w := config.Window

	sizes := []struct {
		key   string
		value int
	}{
		{"window.width", w.Width},
		{"window.height", w.Height},
		{"window.min_width", w.MinWidth},
		{"window.min_height", w.MinHeight},
		{"window.max_width", w.MaxWidth},
		{"window.max_height", w.MaxHeight},
	}
	for _, s := range sizes {
		if s.value < 0 {
			validationErrors = append(validationErrors, s.key+" must be non-negative")
		}
	}

	if w.MinWidth > 0 && w.MaxWidth > 0 && w.MinWidth > w.MaxWidth {
		validationErrors = append(validationErrors, "window.min_width must not exceed window.max_width")
	}
	if w.MinHeight > 0 && w.MaxHeight > 0 && w.MinHeight > w.MaxHeight {
		validationErrors = append(validationErrors, "window.min_height must not exceed window.max_height")
	}
	if (w.X == nil) != (w.Y == nil) {
		validationErrors = append(validationErrors, "window.x and window.y must be set together")
	}
	return validationErrors
}

func validateBehavior(config *Config) []string {
	if z := config.Behavior.Zoom; z < entity.ZoomMin || z > entity.ZoomMax {
		return []string{fmt.Sprintf("behavior.zoom must be between %.2f and %.2f", entity.ZoomMin, entity.ZoomMax)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level is invalid: %q", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: console, json")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}
