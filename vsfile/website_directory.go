package vsfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WebSiteDirectory is a typed handle for a web-site project, which is a
// plain directory: its source files are found by directory scan rather
// than by a project file manifest.
type WebSiteDirectory struct {
	name string
	path string
}

// NewWebSiteDirectory creates a web-site directory handle
func NewWebSiteDirectory(name, path string) (WebSiteDirectory, error) {
	if strings.TrimSpace(name) == "" {
		return WebSiteDirectory{}, fmt.Errorf("name: %w", ErrInvalidArgument)
	}
	if strings.TrimSpace(path) == "" {
		return WebSiteDirectory{}, fmt.Errorf("path: %w", ErrInvalidArgument)
	}
	return WebSiteDirectory{name: name, path: filepath.Clean(path)}, nil
}

// Name returns the display name from the solution reference
func (w WebSiteDirectory) Name() string {
	return w.name
}

// Path returns the directory path
func (w WebSiteDirectory) Path() string {
	return w.path
}

// Validate checks that the directory exists
func (w WebSiteDirectory) Validate() error {
	info, err := os.Stat(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", w.path, ErrNotFound)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", w.path, ErrNotFound)
	}
	return nil
}

// Load recursively enumerates source files under the directory.
// Hidden directories and bin/obj build output are skipped.
func (w WebSiteDirectory) Load() ([]SourceFile, error) {
	wanted := make(map[string]bool)
	for _, ext := range SourceExtensions() {
		wanted[ext] = true
	}

	var files []SourceFile
	err := filepath.WalkDir(w.path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != w.path && (strings.HasPrefix(name, ".") || name == "bin" || name == "obj") {
				return filepath.SkipDir
			}
			return nil
		}
		if wanted[strings.ToLower(filepath.Ext(path))] {
			sf, err := NewSourceFile(path)
			if err != nil {
				return err
			}
			files = append(files, sf)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", w.path, ErrNotFound)
		}
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path() < files[j].Path() })
	return files, nil
}
