// Package validate holds the pure precondition checks run before a scan or a
// bulk operation touches the filesystem.
package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/sdejongh/sizesweep/pkg/models"
	"github.com/sdejongh/sizesweep/pkg/storage"
)

// PathValidator checks a candidate directory
type PathValidator struct {
	backend storage.Backend
}

// NewPathValidator creates a path validator over the given backend
func NewPathValidator(backend storage.Backend) *PathValidator {
	return &PathValidator{backend: backend}
}

// Validate checks, in order, that path is non-blank, exists, is a directory
// and is readable. The message names the first violated condition.
func (v *PathValidator) Validate(path string) models.ValidationOutcome {
	if strings.TrimSpace(path) == "" {
		return models.Invalid("path is empty")
	}

	info, err := v.backend.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Invalid(fmt.Sprintf("path does not exist: %s", path))
		}
		return models.Invalid(fmt.Sprintf("cannot access path %s: %v", path, err))
	}

	if !info.IsDir {
		return models.Invalid(fmt.Sprintf("path is not a directory: %s", path))
	}

	if !v.backend.Readable(path) {
		return models.Invalid(fmt.Sprintf("no read permission: %s", path))
	}

	return models.Valid()
}
