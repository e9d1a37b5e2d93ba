package cli

import (
	"context"
	"errors"

	"github.com/41008896/treediff/pkg/models"
)

// ExitError carries an explicit process exit code
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return models.ExitSuccess
	}

	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, models.ErrRootNotFound), errors.Is(err, models.ErrRootUnreadable):
		return models.ExitInvalidRoot
	case errors.Is(err, models.ErrOutputWrite):
		return models.ExitOutputWrite
	case errors.Is(err, context.Canceled):
		return models.ExitCancelled
	default:
		return models.ExitUsage
	}
}
