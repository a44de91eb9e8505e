package styles

import (
	"github.com/charmbracelet/lipgloss"

	domainurl "github.com/bnema/appshell/internal/domain/url"
)

// ClassificationBadge renders INTERNAL in the accent color and EXTERNAL muted.
func (t *Theme) ClassificationBadge(c domainurl.Classification) string {
	if c == domainurl.Internal {
		return t.Badge.Render(c.String())
	}
	return t.StatusBadge(c.String(), t.Text, t.Warning)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// Check renders a check or cross icon.
func (t *Theme) Check(ok bool) string {
	if ok {
		return t.SuccessStyle.Render(IconCheck)
	}
	return t.ErrorStyle.Render(IconX)
}
