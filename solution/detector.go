package solution

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Detector helps locate solution files on disk
type Detector struct {
	// SearchDir is the directory to search for solution files
	SearchDir string
}

// NewDetector creates a new solution file detector
func NewDetector(searchDir string) *Detector {
	if searchDir == "" {
		searchDir = "."
	}
	return &Detector{SearchDir: searchDir}
}

// IsSolutionFile checks if a file path has the .sln extension
func IsSolutionFile(path string) bool {
	if path == "" {
		return false
	}
	return strings.ToLower(filepath.Ext(path)) == ".sln"
}

// DetectionResult contains the result of solution file detection
type DetectionResult struct {
	// Found indicates if any solution file was found
	Found bool

	// Ambiguous indicates if multiple solution files were found
	Ambiguous bool

	// SolutionPath is the path to the found solution file
	SolutionPath string

	// FoundFiles lists all solution files found
	FoundFiles []string
}

// DetectSolution searches for solution files in the configured directory
func (d *Detector) DetectSolution() (*DetectionResult, error) {
	result := &DetectionResult{
		FoundFiles: []string{},
	}

	err := filepath.Walk(d.SearchDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip directories we can't read
			if os.IsPermission(err) {
				return nil
			}
			return err
		}

		if info.IsDir() {
			// Don't recurse into hidden directories or build directories
			name := info.Name()
			if path != d.SearchDir && (strings.HasPrefix(name, ".") || name == "node_modules" || name == "bin" || name == "obj") {
				return filepath.SkipDir
			}
			return nil
		}

		if IsSolutionFile(path) {
			absPath, err := filepath.Abs(path)
			if err != nil {
				absPath = path
			}
			result.FoundFiles = append(result.FoundFiles, absPath)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("error searching for solution files: %w", err)
	}

	switch len(result.FoundFiles) {
	case 0:
		return result, nil
	case 1:
		result.Found = true
		result.SolutionPath = result.FoundFiles[0]
		return result, nil
	default:
		result.Found = true
		result.Ambiguous = true
		return result, nil
	}
}
