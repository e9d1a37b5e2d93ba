package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/41008896/treediff/internal/platform"
)

// ErrNotDirectory is returned when a backend root is not a directory
var ErrNotDirectory = errors.New("not a directory")

// Local is a filesystem-based storage backend
type Local struct {
	rootPath string
}

// NewLocal creates a new local filesystem backend
func NewLocal(rootPath string) (*Local, error) {
	if err := platform.ValidatePath(rootPath); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(platform.NormalizePath(rootPath))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	// WalkDir does not descend into a symlinked root
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, absPath)
	}

	return &Local{rootPath: absPath}, nil
}

// Root returns the absolute root path
func (l *Local) Root() string {
	return l.rootPath
}

// List returns all regular files under the root recursively. Symlinks are
// indexed when they resolve to a regular file; symlinked directories are
// not followed.
func (l *Local) List(ctx context.Context, onSkip SkipFunc) ([]FileInfo, error) {
	var files []FileInfo

	skip := func(p string, err error) {
		if onSkip == nil {
			return
		}
		rel, relErr := platform.RelSlash(l.rootPath, p)
		if relErr != nil {
			rel = p
		}
		onSkip(rel, err)
	}

	err := filepath.WalkDir(l.rootPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == l.rootPath {
				return err
			}
			skip(p, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			return nil
		}

		var info fs.FileInfo
		switch {
		case d.Type().IsRegular():
			info, err = d.Info()
		case d.Type()&fs.ModeSymlink != 0:
			info, err = os.Stat(p)
		default:
			// sockets, devices, pipes
			return nil
		}
		if err != nil {
			skip(p, err)
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		relPath, err := platform.RelSlash(l.rootPath, p)
		if err != nil {
			skip(p, err)
			return nil
		}

		files = append(files, FileInfo{
			Path:         p,
			RelativePath: relPath,
			Size:         info.Size(),
			ModTime:      info.ModTime(),
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return files, nil
}

// Open opens a file for reading
func (l *Local) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	fullPath := filepath.Join(l.rootPath, filepath.FromSlash(relPath))

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}
