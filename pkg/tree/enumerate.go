// Package tree builds the relative-path index of one directory tree.
package tree

import (
	"context"
	"errors"
	"io/fs"

	"github.com/41008896/treediff/pkg/logging"
	"github.com/41008896/treediff/pkg/models"
	"github.com/41008896/treediff/pkg/storage"
)

// Options controls an enumeration
type Options struct {
	// Side labels log entries and errors
	Side models.Side
	// Exclude drops matching relative paths from the index
	Exclude *Excluder
	// Logger receives skipped entries; nil discards them
	Logger logging.Logger
}

// Enumerate walks the backend and returns the index of its regular files.
// Entries that cannot be read are logged and skipped. A root that cannot
// be listed returns a *models.RootError.
func Enumerate(ctx context.Context, backend storage.Backend, opts Options) (models.FileIndex, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	logger = logger.WithFields(logging.Fields{"side": string(opts.Side)})

	skipped := 0
	files, err := backend.List(ctx, func(relPath string, err error) {
		skipped++
		logger.Warn(ctx, "Skipping unreadable entry", logging.Fields{
			"path":  relPath,
			"error": err.Error(),
		})
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		kind := models.ErrRootUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			kind = models.ErrRootNotFound
		}
		return nil, &models.RootError{Side: opts.Side, Path: backend.Root(), Kind: kind, Err: err}
	}

	index := make(models.FileIndex, len(files))
	excluded := 0
	for _, f := range files {
		if opts.Exclude.Match(f.RelativePath) {
			excluded++
			continue
		}
		index[f.RelativePath] = f.Path
	}

	logger.Info(ctx, "Tree enumerated", logging.Fields{
		"root":     backend.Root(),
		"files":    len(index),
		"excluded": excluded,
		"skipped":  skipped,
	})

	return index, nil
}

// Open creates the local backend for a tree root, classifying failures as
// root errors for the given side
func Open(side models.Side, root string) (*storage.Local, error) {
	backend, err := storage.NewLocal(root)
	if err == nil {
		return backend, nil
	}
	kind := models.ErrRootUnreadable
	if errors.Is(err, fs.ErrNotExist) {
		kind = models.ErrRootNotFound
	}
	return nil, &models.RootError{Side: side, Path: root, Kind: kind, Err: err}
}
