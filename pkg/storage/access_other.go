//go:build !unix

package storage

import (
	"os"
)

func canRead(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// canWrite falls back to the owner write bit; Windows maps the read-only
// attribute onto it.
func canWrite(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o200 != 0
}

// Without EXDEV the rename error is returned as-is.
func isEXDEV(err error) bool {
	return false
}
