package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about an indexed file
type FileInfo struct {
	// Path is the absolute path on the backend
	Path string
	// RelativePath is relative to the backend root, always using '/'
	RelativePath string
	Size         int64
	ModTime      time.Time
}

// SkipFunc is called for every entry the walk cannot read. The walk
// continues after it returns.
type SkipFunc func(relPath string, err error)

// Backend defines the read-only operations a tree comparison needs
type Backend interface {
	// Root returns the absolute root path of the backend
	Root() string

	// List returns every regular file under the root recursively.
	// Unreadable entries below the root are reported to onSkip and left
	// out; failing to read the root itself is returned as an error.
	List(ctx context.Context, onSkip SkipFunc) ([]FileInfo, error)

	// Open opens a file for reading by its relative path
	Open(ctx context.Context, relPath string) (io.ReadCloser, error)

	// Close releases any resources held by the backend
	Close() error
}
