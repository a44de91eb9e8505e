package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDisposition(t *testing.T) {
	tests := []struct {
		in   string
		want Disposition
	}{
		{"", DispositionSameWindow},
		{"default", DispositionSameWindow},
		{"same-window", DispositionSameWindow},
		{"background-tab", DispositionBackgroundTab},
		{"foreground-tab", DispositionForegroundTab},
		{"new-window", DispositionNewWindow},
		{"other", DispositionNewWindow},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDisposition(tt.in))
		})
	}
}

func TestDisposition_IsTab(t *testing.T) {
	assert.True(t, DispositionBackgroundTab.IsTab())
	assert.True(t, DispositionForegroundTab.IsTab())
	assert.False(t, DispositionNewWindow.IsTab())
	assert.False(t, DispositionSameWindow.IsTab())
}

func TestDisposition_StringRoundTrip(t *testing.T) {
	for _, d := range []Disposition{DispositionSameWindow, DispositionBackgroundTab, DispositionForegroundTab, DispositionNewWindow} {
		assert.Equal(t, d, ParseDisposition(d.String()))
	}
}
