package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppOptions_Defaults(t *testing.T) {
	var o AppOptions
	assert.Equal(t, DefaultWindowWidth, o.DefaultWidth())
	assert.Equal(t, DefaultWindowHeight, o.DefaultHeight())
	assert.Equal(t, ZoomDefault, o.BuildTimeZoom())

	o = AppOptions{Width: 1024, Height: 768, Zoom: 1.25}
	assert.Equal(t, 1024, o.DefaultWidth())
	assert.Equal(t, 768, o.DefaultHeight())
	assert.Equal(t, 1.25, o.BuildTimeZoom())
}

func TestAppOptions_CloneIsDeep(t *testing.T) {
	x := 40
	o := &AppOptions{InternalURLs: []string{"a.example.com"}, X: &x, Maximize: true}

	c := o.Clone()
	c.InternalURLs[0] = "changed"
	*c.X = 99
	c.Maximize = false

	assert.Equal(t, "a.example.com", o.InternalURLs[0])
	assert.Equal(t, 40, *o.X)
	assert.True(t, o.Maximize)

	var nilOpts *AppOptions
	assert.Nil(t, nilOpts.Clone())
}

func TestAppOptions_JSONUsesPageScriptKeys(t *testing.T) {
	o := AppOptions{Name: "Mail", TargetURL: "https://mail.example.com", FastQuit: true, Zoom: 1}

	data, err := json.Marshal(o)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "https://mail.example.com", raw["targetUrl"])
	assert.Equal(t, true, raw["fastQuit"])
	assert.NotContains(t, raw, "maximize")
}
