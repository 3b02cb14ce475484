// Utilities for reading user-supplied files.
package shared

import (
	"fmt"
	"os"
)

// VerifyAndReadFile checks that a path was provided and points at a regular
// file, then reads it. An empty path maps to [ErrNoFileSelected].
func VerifyAndReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrNoFileSelected
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoFileSelected, path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidInput, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}
