package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// LogFileName is the active log file inside the log directory.
const LogFileName = "appshell.log"

const logFilePerm = 0o600

// FileWriter appends to a log file and rotates it once it grows past a size
// limit. Rotated files are named "<name>.<timestamp>" and pruned to maxBackups.
type FileWriter struct {
	mu         sync.Mutex
	dir        string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
	now        func() time.Time
}

// NewFileWriter opens (or creates) the log file in dir.
func NewFileWriter(dir string, maxSizeMB, maxBackups int) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	w := &FileWriter{
		dir:        dir,
		maxSize:    int64(maxSizeMB) << 20,
		maxBackups: maxBackups,
		now:        time.Now,
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

// Path returns the active log file path.
func (w *FileWriter) Path() string {
	return filepath.Join(w.dir, LogFileName)
}

func (w *FileWriter) open() error {
	f, err := os.OpenFile(w.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	w.file = f
	w.size = info.Size()
	return nil
}

// Write implements io.Writer.
func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		if err := w.open(); err != nil {
			return 0, err
		}
	}
	if w.maxSize > 0 && w.size > 0 && w.size+int64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

func (w *FileWriter) rotate() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	w.file = nil

	backup := fmt.Sprintf("%s.%s", w.Path(), w.now().Format("20060102-150405.000"))
	if err := os.Rename(w.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	w.prune()
	return w.open()
}

// prune removes the oldest rotated files beyond maxBackups.
func (w *FileWriter) prune() {
	if w.maxBackups <= 0 {
		return
	}
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return
	}

	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), LogFileName+".") {
			backups = append(backups, e.Name())
		}
	}
	if len(backups) <= w.maxBackups {
		return
	}
	// Timestamp suffixes sort chronologically.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-w.maxBackups] {
		_ = os.Remove(filepath.Join(w.dir, name))
	}
}

// Close closes the active file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// FileConfig configures the optional log file.
type FileConfig struct {
	Enabled    bool
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	// WriteToStderr keeps the console output alongside the file.
	WriteToStderr bool
}

// NewWithFile creates a logger that also writes JSON lines to a rotating
// file when fileCfg is enabled. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}
	if !fileCfg.Enabled || fileCfg.Dir == "" {
		return New(cfg), noop, nil
	}

	fw, err := NewFileWriter(fileCfg.Dir, fileCfg.MaxSizeMB, fileCfg.MaxBackups)
	if err != nil {
		return New(cfg), noop, err
	}

	writers := []io.Writer{fw}
	if fileCfg.WriteToStderr {
		out := cfg.Output
		if out == nil {
			out = os.Stderr
		}
		if cfg.Format == "console" {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
		}
		writers = append(writers, out)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, func() { _ = fw.Close() }, nil
}
