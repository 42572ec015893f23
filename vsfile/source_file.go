package vsfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SourceFile is a located source file: path, extension, name.
// Immutable once constructed.
type SourceFile struct {
	path string
}

// NewSourceFile creates a source file handle for the given path
func NewSourceFile(path string) (SourceFile, error) {
	if strings.TrimSpace(path) == "" {
		return SourceFile{}, fmt.Errorf("path: %w", ErrInvalidArgument)
	}
	return SourceFile{path: filepath.Clean(path)}, nil
}

// Path returns the file path
func (f SourceFile) Path() string {
	return f.path
}

// Name returns the base name of the file
func (f SourceFile) Name() string {
	return filepath.Base(f.path)
}

// Extension returns the file extension (lowercase, with dot)
func (f SourceFile) Extension() string {
	return strings.ToLower(filepath.Ext(f.path))
}

// Validate checks that the file exists and carries the required extension
func (f SourceFile) Validate(requiredExt string) error {
	if f.Extension() != strings.ToLower(requiredExt) {
		return fmt.Errorf("%s: %w (want %s)", f.path, ErrWrongExtension, requiredExt)
	}
	info, err := os.Stat(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", f.path, ErrNotFound)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", f.path, ErrNotFound)
	}
	return nil
}

// normalizeSeparators converts solution-file backslash paths to the host separator
func normalizeSeparators(path string) string {
	return filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))
}
