package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ListFiles returns the names of regular files in dir, sorted ascending.
// Returns an error if dir doesn't exist or is not a directory.
func ListFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
			continue
		}
		// Follow symlinks, skip dangling ones
		if entry.Type()&os.ModeSymlink != 0 {
			target, err := os.Stat(filepath.Join(dir, entry.Name()))
			if err == nil && target.Mode().IsRegular() {
				files = append(files, entry.Name())
			}
		}
	}

	// os.ReadDir already sorts, keep the guarantee explicit
	sort.Strings(files)

	return files, nil
}
