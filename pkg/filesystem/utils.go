// Package filesystem resolves and prepares the paths the feed pipeline
// reads items from and writes documents to.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sentinel errors for missing inputs. Callers match them with errors.Is.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrDirNotFound  = errors.New("directory not found")
)

// GetDefaultPath resolves filename relative to the directory holding the
// running executable.
func GetDefaultPath(filename string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), filename), nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// EnsureDirectoryExists creates the parent directory of filePath when it is
// missing. A bare filename needs no directory and is left alone.
func EnsureDirectoryExists(filePath string) error {
	dir := filepath.Dir(filePath)
	if dir == "." {
		return nil
	}

	err := os.MkdirAll(dir, 0o755)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	default:
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
}
