//go:build !windows

package internal

import (
	"path/filepath"
)

// ResolvePath returns the final location of a file or directory, following every symlink.
func ResolvePath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
