package vsfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/willibrandon/gosln/msbuild"
)

// ProjectFile is a typed handle for a language project referenced by a
// solution. Construction records name and location only; Load parses
// the project XML on demand.
type ProjectFile struct {
	kind Kind
	name string
	path string
}

// NewProjectFile creates a project file handle
func NewProjectFile(kind Kind, name, path string) (ProjectFile, error) {
	if strings.TrimSpace(name) == "" {
		return ProjectFile{}, fmt.Errorf("name: %w", ErrInvalidArgument)
	}
	if strings.TrimSpace(path) == "" {
		return ProjectFile{}, fmt.Errorf("path: %w", ErrInvalidArgument)
	}
	return ProjectFile{kind: kind, name: name, path: filepath.Clean(path)}, nil
}

// Kind returns the project language kind
func (p ProjectFile) Kind() Kind {
	return p.kind
}

// Name returns the display name from the solution reference
func (p ProjectFile) Name() string {
	return p.name
}

// Path returns the project file path
func (p ProjectFile) Path() string {
	return p.path
}

// Validate checks that the project file exists and carries the extension
// expected for its kind
func (p ProjectFile) Validate() error {
	ext := strings.ToLower(filepath.Ext(p.path))
	if ext != p.kind.ProjectExtension() {
		return fmt.Errorf("%s: %w (want %s)", p.path, ErrWrongExtension, p.kind.ProjectExtension())
	}
	info, err := os.Stat(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", p.path, ErrNotFound)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", p.path, ErrNotFound)
	}
	return nil
}

// Load parses the project XML and returns a handle for every compiled
// source item, resolved against the project file's directory.
// Auto-generated entries are filtered by the document reader.
func (p ProjectFile) Load() ([]SourceFile, error) {
	doc, err := msbuild.LoadDocument(p.path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(p.path)
	items := doc.CompileItems()
	files := make([]SourceFile, 0, len(items))
	for _, include := range items {
		sf, err := NewSourceFile(filepath.Join(dir, normalizeSeparators(include)))
		if err != nil {
			return nil, err
		}
		files = append(files, sf)
	}
	return files, nil
}
