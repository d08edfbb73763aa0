// Package filex contains filesystem helpers for locally stored client state.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureFileDir resolves path against the working directory, creates its
// parent directory (owner-only permissions) when missing, and returns the
// absolute file path.
func EnsureFileDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return abs, nil
}
