package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestVerifyAndReadFile(t *testing.T) {
	t.Run("empty path is no file selected", func(t *testing.T) {
		if _, err := VerifyAndReadFile(""); !errors.Is(err, ErrNoFileSelected) {
			t.Errorf("expected ErrNoFileSelected, got %v", err)
		}
	})

	t.Run("missing file is no file selected", func(t *testing.T) {
		if _, err := VerifyAndReadFile("/nonexistent/file.json"); !errors.Is(err, ErrNoFileSelected) {
			t.Errorf("expected ErrNoFileSelected, got %v", err)
		}
	})

	t.Run("directory is invalid input", func(t *testing.T) {
		if _, err := VerifyAndReadFile(t.TempDir()); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("reads a regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		if err := os.WriteFile(path, []byte(`{"metadata":[]}`), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		data, err := VerifyAndReadFile(path)
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if string(data) != `{"metadata":[]}` {
			t.Errorf("unexpected contents: %s", data)
		}
	})
}
