// Package logger writes the renderer's diagnostics. Stdout carries rendered
// lines, so records go to one file per process under the state directory.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrInvalidLogLevel is returned for a level slog does not know.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Options selects where records go and which are kept.
type Options struct {
	// Level is debug, info, warn or error, in any case. Empty disables
	// logging.
	Level string
	// Dir holds the log files. It defaults to StateDir.
	Dir string
	// JSON switches records from logfmt text to JSON lines.
	JSON bool
}

// Logger is a slog.Logger that owns its output file.
type Logger struct {
	*slog.Logger
	file *os.File
}

// Open starts a logger for opts. The file is named after the process id
// and truncated if it already exists.
func Open(opts Options) (*Logger, error) {
	if opts.Level == "" {
		return Nop(), nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		if dir, err = StateDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("zjhints-%d.log", os.Getpid()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := &Logger{Logger: slog.New(handler(f, level, opts.JSON)), file: f}
	l.Info("logging", "pid", os.Getpid(), "level", level, "path", path)
	return l, nil
}

// Nop returns a logger that drops every record.
func Nop() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// NewWriter logs text records at level and above to w.
func NewWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(handler(w, level, false))}
}

// Path returns the log file, or "" when records are not kept in one.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close releases the log file. It is a no-op for loggers without one.
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}

// StateDir is $XDG_STATE_HOME/zjhints, falling back to
// ~/.local/state/zjhints.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate state directory: %w", err)
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, "zjhints"), nil
}

// ParseLevel accepts the four slog level names, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %q (use debug, info, warn, error)", ErrInvalidLogLevel, s)
	}
	return level, nil
}

func handler(w io.Writer, level slog.Level, json bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
