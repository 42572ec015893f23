package solution

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style paths to forward slash format.
// UNC paths keep their leading double slash.
func NormalizePath(path string) string {
	if path == "" {
		return ""
	}

	isUNC := strings.HasPrefix(path, `\\`) || strings.HasPrefix(path, "//")

	normalized := strings.ReplaceAll(path, `\`, "/")
	for strings.Contains(normalized, "//") {
		normalized = strings.ReplaceAll(normalized, "//", "/")
	}

	if isUNC {
		normalized = "/" + normalized
	}
	return normalized
}

// ResolveProjectPath resolves a reference path against the directory
// containing the solution file. Absolute paths are cleaned and returned
// unchanged.
func ResolveProjectPath(solutionDir, path string) string {
	if path == "" {
		return ""
	}

	normalized := NormalizePath(path)
	if filepath.IsAbs(normalized) {
		return filepath.Clean(normalized)
	}
	return filepath.Clean(filepath.Join(solutionDir, normalized))
}
