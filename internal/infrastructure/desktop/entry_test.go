package desktop

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppID(t *testing.T) {
	assert.Equal(t, "appshell-team-chat", AppID("Team Chat"))
	assert.Equal(t, "appshell-mail-example-com", AppID("mail.example.com"))
	assert.Equal(t, "appshell", AppID("  !! "))
	assert.Equal(t, "application://appshell-mail.desktop", AppURI("Mail"))
}

func TestEntries_InstallStatusRemove(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	ctx := context.Background()
	e := &Entries{}

	status, err := e.Status(ctx, "Mail")
	require.NoError(t, err)
	assert.False(t, status.Installed)
	assert.Equal(t, filepath.Join(dataHome, "applications", "appshell-mail.desktop"), status.Path)

	path, err := e.Install(ctx, EntrySpec{
		Name:      "Mail",
		TargetURL: "https://mail.example.com",
		Exec:      "/usr/bin/appshell --config /tmp/mail.toml",
	})
	require.NoError(t, err)
	assert.Equal(t, status.Path, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Name=Mail\n")
	assert.Contains(t, string(content), "Exec=/usr/bin/appshell --config /tmp/mail.toml\n")
	assert.Contains(t, string(content), "Icon=appshell-mail\n")
	assert.Contains(t, string(content), "StartupWMClass=appshell-mail\n")
	assert.Contains(t, string(content), "Comment=https://mail.example.com\n")

	status, err = e.Status(ctx, "Mail")
	require.NoError(t, err)
	assert.True(t, status.Installed)

	require.NoError(t, e.Remove(ctx, "Mail"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// already gone
	assert.NoError(t, e.Remove(ctx, "Mail"))
}

func TestEntries_InstallUsesExplicitIcon(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	e := &Entries{}

	path, err := e.Install(context.Background(), EntrySpec{Name: "Mail", Icon: "/opt/mail.png", Exec: "appshell"})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Icon=/opt/mail.png\n")
}
