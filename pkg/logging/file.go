package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Format represents the log output format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// FileLoggerConfig holds configuration for file logging
type FileLoggerConfig struct {
	// Path is the log file path
	Path string
	// Format is the output format (json or text)
	Format Format
	// Level is the minimum log level
	Level Level
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of backup files to keep
	MaxBackups int
}

// SlogLogger implements Logger on top of a log/slog handler
type SlogLogger struct {
	logger *slog.Logger
	closer io.Closer
}

// NewFileLogger creates a logger appending to a size-rotated file
func NewFileLogger(config FileLoggerConfig) (*SlogLogger, error) {
	out, err := openRotatingFile(config.Path, config.MaxSize, config.MaxBackups)
	if err != nil {
		return nil, err
	}

	return &SlogLogger{
		logger: slog.New(newHandler(out, config.Format, config.Level)),
		closer: out,
	}, nil
}

// NewStreamLogger creates a logger writing to w. Closing it does not close w.
func NewStreamLogger(w io.Writer, format Format, level Level) *SlogLogger {
	return &SlogLogger{logger: slog.New(newHandler(w, format, level))}
}

func newHandler(w io.Writer, format Format, level Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: slogLevel(level)}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func (l *SlogLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.logger.DebugContext(ctx, msg, attrs(fields)...)
}

func (l *SlogLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.logger.InfoContext(ctx, msg, attrs(fields)...)
}

func (l *SlogLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.logger.WarnContext(ctx, msg, attrs(fields)...)
}

func (l *SlogLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	l.logger.ErrorContext(ctx, msg, args...)
}

// WithFields returns a logger with additional fields. The child shares the
// parent's output; only the parent closes it.
func (l *SlogLogger) WithFields(fields Fields) Logger {
	return &SlogLogger{logger: l.logger.With(attrs(fields)...)}
}

// Close closes the underlying file, if any
func (l *SlogLogger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// attrs converts fields to slog attributes in key order
func attrs(fields Fields) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys))
	for _, k := range keys {
		args = append(args, slog.Any(k, fields[k]))
	}
	return args
}

func slogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// rotatingFile is an append-only file that rolls over to path.1..path.N
// once it reaches maxSize bytes
type rotatingFile struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
}

func openRotatingFile(path string, maxSize int64, maxBackups int) (*rotatingFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rf := &rotatingFile{path: path, maxSize: maxSize, maxBackups: maxBackups}
	if err := rf.open(); err != nil {
		return nil, err
	}
	return rf, nil
}

func (rf *rotatingFile) open() error {
	file, err := os.OpenFile(rf.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	rf.file = file
	rf.size = info.Size()
	return nil
}

func (rf *rotatingFile) Write(p []byte) (int, error) {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.file == nil {
		return 0, os.ErrClosed
	}
	if rf.maxSize > 0 && rf.size >= rf.maxSize {
		if err := rf.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := rf.file.Write(p)
	rf.size += int64(n)
	return n, err
}

// rotate must be called with mu held
func (rf *rotatingFile) rotate() error {
	rf.file.Close()
	rf.file = nil

	if rf.maxBackups > 0 {
		os.Remove(fmt.Sprintf("%s.%d", rf.path, rf.maxBackups))
		for i := rf.maxBackups - 1; i >= 1; i-- {
			os.Rename(fmt.Sprintf("%s.%d", rf.path, i), fmt.Sprintf("%s.%d", rf.path, i+1))
		}
		os.Rename(rf.path, rf.path+".1")
	} else {
		os.Remove(rf.path)
	}

	return rf.open()
}

func (rf *rotatingFile) Close() error {
	rf.mu.Lock()
	defer rf.mu.Unlock()
	if rf.file == nil {
		return nil
	}
	err := rf.file.Close()
	rf.file = nil
	return err
}
