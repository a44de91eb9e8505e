package style

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inject.css")
	require.NoError(t, os.WriteFile(path, []byte("body { color: red; }"), 0o644))

	s, err := NewFileSource(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "body { color: red; }", s.CSS(context.Background()))
	assert.Equal(t, path, s.Path())
}

func TestFileSource_MissingFileIsEmpty(t *testing.T) {
	s, err := NewFileSource(context.Background(), filepath.Join(t.TempDir(), "missing.css"))
	require.NoError(t, err)
	assert.Empty(t, s.CSS(context.Background()))
}

func TestFileSource_EmptyPath(t *testing.T) {
	s, err := NewFileSource(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, s.CSS(context.Background()))
	assert.NoError(t, s.Watch(context.Background()))
	assert.NoError(t, s.Close())
}

func TestFileSource_UnreadableIsError(t *testing.T) {
	_, err := NewFileSource(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestFileSource_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inject.css")
	ctx := context.Background()

	s, err := NewFileSource(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Watch(ctx))
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, os.WriteFile(path, []byte("a { b: c; }"), 0o644))
	assert.Eventually(t, func() bool {
		return s.CSS(ctx) == "a { b: c; }"
	}, 2*time.Second, 10*time.Millisecond)

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.css"), []byte("x"), 0o644))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "a { b: c; }", s.CSS(ctx))
}

func TestFileSource_CloseIsIdempotent(t *testing.T) {
	s, err := NewFileSource(context.Background(), filepath.Join(t.TempDir(), "inject.css"))
	require.NoError(t, err)
	require.NoError(t, s.Watch(context.Background()))
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}
