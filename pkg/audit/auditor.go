// Package audit checks that target files can be mutated before a bulk operation.
package audit

import (
	"path/filepath"

	"github.com/sdejongh/sizesweep/pkg/models"
	"github.com/sdejongh/sizesweep/pkg/storage"
)

// Problem reasons reported by the auditor
const (
	ReasonMissing          = "file does not exist"
	ReasonFileNotWritable  = "file is not writable"
	ReasonDirNotWritable   = "containing directory is not writable"
	reasonExistenceUnknown = "cannot check existence: "
)

// Auditor performs the permission pre-flight pass
type Auditor struct {
	backend storage.Backend
}

// NewAuditor creates an auditor over backend
func NewAuditor(backend storage.Backend) *Auditor {
	return &Auditor{backend: backend}
}

// Audit returns, in input order, the first problem found for each path:
// missing file, unwritable file, unwritable containing directory.
// Paths without problems are omitted; an empty result means every path is
// safe to mutate.
func (a *Auditor) Audit(paths []string) []models.ProblemEntry {
	problems := []models.ProblemEntry{}
	for _, path := range paths {
		if reason, ok := a.check(path); !ok {
			problems = append(problems, models.ProblemEntry{Path: path, Reason: reason})
		}
	}
	return problems
}

func (a *Auditor) check(path string) (string, bool) {
	exists, err := a.backend.Exists(path)
	if err != nil {
		return reasonExistenceUnknown + err.Error(), false
	}
	if !exists {
		return ReasonMissing, false
	}
	if !a.backend.Writable(path) {
		return ReasonFileNotWritable, false
	}
	if !a.backend.Writable(filepath.Dir(path)) {
		return ReasonDirNotWritable, false
	}
	return "", true
}
