package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
)

// FileInfo represents metadata about a file
type FileInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
	IsDir   bool
	// IsRegular is false for directories, symlinks, devices, sockets and pipes
	IsRegular bool
}

// WalkFunc is called for every entry reached by Walk.
// Returning fs.SkipDir on a directory prunes it.
type WalkFunc func(path string, entry fs.DirEntry, err error) error

// Backend defines the filesystem primitives the scanner, filter, auditor and
// executors consume. Every failure is returned as an error; callers translate
// them into validation outcomes or problem entries.
type Backend interface {
	// Walk enumerates the tree rooted at root in lexical order, following
	// root itself when it is a symlink but no symlink below it
	Walk(root string, fn WalkFunc) error

	// Stat returns metadata, following symlinks
	Stat(path string) (*FileInfo, error)

	// Lstat returns metadata without following symlinks
	Lstat(path string) (*FileInfo, error)

	// Remove deletes a single file
	Remove(path string) error

	// Move moves the file at src to dst. dst must not exist.
	Move(src, dst string) error

	// Exists reports whether path exists
	Exists(path string) (bool, error)

	// Readable reports whether the current process may read path
	Readable(path string) bool

	// Writable reports whether the current process may write path
	Writable(path string) bool
}

// ErrTargetExists is returned by Move when the destination path is taken
var ErrTargetExists = errors.New("target already exists")

// CrossDeviceError reports a move whose rename crossed filesystems and whose
// copy fallback failed as well
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("cross-device move %q -> %q failed: %v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsCrossDevice reports whether err is a *CrossDeviceError
func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}
