package cli

import (
	"errors"
	"fmt"

	"github.com/sdejongh/sizesweep/pkg/models"
)

// ExitError carries a process exit code for an outcome that was already
// rendered to the user
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if models.IsValidationError(err) {
		return 2
	}
	return 1
}

// IsReported reports whether err only carries an exit code
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

func exitForStatus(status models.Status) error {
	if code := status.ExitCode(); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
