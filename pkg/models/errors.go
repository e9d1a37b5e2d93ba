package models

import (
	"errors"
	"fmt"
)

var (
	// ErrRootNotFound means a tree root does not exist
	ErrRootNotFound = errors.New("root not found")
	// ErrRootUnreadable means a tree root exists but cannot be listed
	ErrRootUnreadable = errors.New("root unreadable")
	// ErrFileUnreadable means one file could not be opened or read
	ErrFileUnreadable = errors.New("file unreadable")
	// ErrOutputWrite means the report could not be written
	ErrOutputWrite = errors.New("output write failure")
)

// RootError is a fatal error about one of the two tree roots
type RootError struct {
	Side Side
	Path string
	// Kind is ErrRootNotFound or ErrRootUnreadable
	Kind error
	Err  error
}

func (e *RootError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s tree, scan phase): %s: %v", e.Kind, e.Side, e.Path, e.Err)
	}
	return fmt.Sprintf("%s (%s tree, scan phase): %s", e.Kind, e.Side, e.Path)
}

// Unwrap exposes both the kind sentinel and the cause
func (e *RootError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// FileError is a recoverable error scoped to a single file
type FileError struct {
	Side Side
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s (%s tree, compare phase): %s: %v", ErrFileUnreadable, e.Side, e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause
func (e *FileError) Unwrap() []error {
	return []error{ErrFileUnreadable, e.Err}
}

// OutputError is a fatal error writing the report
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%s (report phase): %s: %v", ErrOutputWrite, e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause
func (e *OutputError) Unwrap() []error {
	return []error{ErrOutputWrite, e.Err}
}
