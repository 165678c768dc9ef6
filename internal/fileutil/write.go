package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
)

func WriteIfChanged(path string, data []byte) error {
	_, err := WriteIfChangedTracked(path, data)
	return err
}

// WriteIfChangedTracked writes data unless path already holds it, creating
// parent directories as needed. It reports whether the file was written.
func WriteIfChangedTracked(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, err
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}
