package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// renameFunc is swapped in tests to simulate EXDEV
var renameFunc = os.Rename

// Local is the operating-system filesystem backend
type Local struct{}

// NewLocal creates a new local filesystem backend
func NewLocal() *Local {
	return &Local{}
}

// Walk enumerates the tree rooted at root.
// A symlinked root is resolved and walked, with every reported path kept
// under root as given. Symlinks below the root are reported but not followed.
func (l *Local) Walk(root string, fn WalkFunc) error {
	resolved, err := resolveRoot(root)
	if err != nil {
		return fn(root, nil, err)
	}
	return filepath.WalkDir(resolved, func(p string, d fs.DirEntry, err error) error {
		if resolved != root {
			p = root + strings.TrimPrefix(p, resolved)
		}
		return fn(p, d, err)
	})
}

// resolveRoot follows root when root itself is a symlink
func resolveRoot(root string) (string, error) {
	info, err := os.Lstat(root)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return root, nil
	}
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	return resolved, nil
}

// Stat returns file metadata, following symlinks
func (l *Local) Stat(path string) (*FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return toFileInfo(path, info), nil
}

// Lstat returns file metadata without following symlinks
func (l *Local) Lstat(path string) (*FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return toFileInfo(path, info), nil
}

// Remove deletes a single file
func (l *Local) Remove(path string) error {
	return os.Remove(path)
}

// Move renames src to dst, copying across filesystems when rename cannot.
// An existing dst is never overwritten.
func (l *Local) Move(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, dst)
	} else if !os.IsNotExist(err) {
		return err
	}

	err := renameFunc(src, dst)
	if err == nil {
		return nil
	}
	if !isEXDEV(err) {
		return err
	}

	if err := copyFile(src, dst); err != nil {
		return &CrossDeviceError{Src: src, Dst: dst, Err: err}
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("copied to %s but failed to remove source: %w", dst, err)
	}
	return nil
}

// Exists checks if a file or directory exists
func (l *Local) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check existence: %w", err)
}

// Readable reports whether the current process may read path
func (l *Local) Readable(path string) bool {
	return canRead(path)
}

// Writable reports whether the current process may write path
func (l *Local) Writable(path string) bool {
	return canWrite(path)
}

func toFileInfo(path string, info os.FileInfo) *FileInfo {
	return &FileInfo{
		Path:      path,
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		IsDir:     info.IsDir(),
		IsRegular: info.Mode().IsRegular(),
	}
}

// copyFile copies a regular file with exclusive create, keeping mode and mtime.
// A partial target is removed on failure.
func copyFile(src, dst string) (err error) {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", src)
	}

	input, err := os.Open(src)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrTargetExists, dst)
		}
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	if _, err = io.Copy(output, input); err != nil {
		_ = output.Close()
		return err
	}
	if err = output.Close(); err != nil {
		return err
	}
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}
