//go:build windows

package internal

import (
	"os"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// ResolvePath returns the final location of a file or directory, following every symlink and junction.
func ResolvePath(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]uint16, windows.MAX_LONG_PATH)
	n, err := windows.GetFinalPathNameByHandle(windows.Handle(f.Fd()), &buf[0], uint32(len(buf)), 0)
	if err != nil {
		return "", err
	}
	final := syscall.UTF16ToString(buf[:n])

	// Strip possible "\\?\" prefix
	return strings.TrimPrefix(final, `\\?\`), nil
}
