package internal

import (
	"errors"
	"io/fs"
	"os"
)

// ResolveHome returns the application home directory with all symlinks resolved.
// The directory is created when it doesn't exist yet.
func ResolveHome(dir string) (string, error) {
	_, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		return "", err
	}
	return ResolvePath(dir)
}
