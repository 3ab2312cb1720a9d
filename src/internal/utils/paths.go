package utils

import "path/filepath"

// GetAbsolutePath returns path unchanged if it is absolute, otherwise it is
// resolved against baseDir. The result is cleaned.
func GetAbsolutePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}
