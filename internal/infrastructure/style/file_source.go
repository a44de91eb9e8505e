// Package style loads the user stylesheet injected into every page.
package style

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/logging"
	"github.com/fsnotify/fsnotify"
)

var _ port.StyleSource = (*FileSource)(nil)

// FileSource serves the contents of a CSS file. A missing file serves an
// empty stylesheet, which disables injection.
type FileSource struct {
	path string

	mu      sync.RWMutex
	css     string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewFileSource reads path once. An empty path yields a source that is
// always empty.
func NewFileSource(ctx context.Context, path string) (*FileSource, error) {
	s := &FileSource{path: path}
	if path == "" {
		return s, nil
	}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the watched file.
func (s *FileSource) Path() string {
	return s.path
}

// CSS implements port.StyleSource.
func (s *FileSource) CSS(_ context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.css
}

func (s *FileSource) reload(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read stylesheet %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.css = string(data)
	s.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("path", s.path).
		Int("bytes", len(data)).
		Msg("stylesheet loaded")
	return nil
}

// Watch reloads the stylesheet whenever the file is written or recreated.
// The parent directory is watched so editors that replace the file by
// rename keep working. Watching stops when ctx is done or Close is called.
func (s *FileSource) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create stylesheet dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})
	go s.loop(ctx, watcher, s.done)
	return nil
}

func (s *FileSource) loop(ctx context.Context, watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	log := logging.FromContext(ctx)
	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := s.reload(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to reload stylesheet")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("stylesheet watcher error")
		}
	}
}

// Close stops watching.
func (s *FileSource) Close() error {
	s.mu.Lock()
	watcher, done := s.watcher, s.done
	s.watcher, s.done = nil, nil
	s.mu.Unlock()

	if watcher == nil {
		return nil
	}
	err := watcher.Close()
	<-done
	return err
}
