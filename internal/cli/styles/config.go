package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/appshell/internal/domain/entity"
)

// ConfigRenderer renders configuration output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := ""
	if !exists {
		status = " " + r.theme.WarningStyle.Render("(not created yet)")
	}
	return fmt.Sprintf("%s %s%s", iconStyle.Render(IconConfig), r.theme.Normal.Render(path), status)
}

// RenderInvalid renders a config load failure.
func (r *ConfigRenderer) RenderInvalid(path string, err error) string {
	return fmt.Sprintf("%s %s\n  %s",
		r.theme.ErrorStyle.Render(IconWarning),
		r.theme.Normal.Render(path),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}

// RenderOptions renders the effective session options.
func (r *ConfigRenderer) RenderOptions(path string, opts *entity.AppOptions) string {
	const keyWidth = 22
	t := r.theme

	onOff := func(v bool) string {
		if v {
			return t.SuccessStyle.Render("on")
		}
		return t.Subtle.Render("off")
	}
	internal := t.Subtle.Render("none")
	if len(opts.InternalURLs) > 0 {
		internal = strings.Join(opts.InternalURLs, ", ")
	}

	lines := []string{
		t.BoxHeader.Render(opts.Name) + " " + t.Subtle.Render(path),
		t.KeyValue("target", opts.TargetURL, keyWidth),
		t.KeyValue("internal urls", internal, keyWidth),
		t.KeyValue("size", fmt.Sprintf("%dx%d", opts.DefaultWidth(), opts.DefaultHeight()), keyWidth),
		t.KeyValue("zoom", fmt.Sprintf("%.0f%%", opts.BuildTimeZoom()*100), keyWidth),
		t.KeyValue("counter badge", onOff(opts.Counter), keyWidth),
		t.KeyValue("bounce", onOff(opts.Bounce), keyWidth),
		t.KeyValue("tray", onOff(opts.Tray), keyWidth),
		t.KeyValue("fast quit", onOff(opts.FastQuit), keyWidth),
		t.KeyValue("maximize pending", onOff(opts.Maximize), keyWidth),
		t.KeyValue("context menu", onOff(!opts.DisableContextMenu), keyWidth),
		t.KeyValue("dev tools", onOff(!opts.DisableDevTools), keyWidth),
	}
	if opts.UserAgent != "" {
		lines = append(lines, t.KeyValue("user agent", opts.UserAgent, keyWidth))
	}
	return strings.Join(lines, "\n")
}
