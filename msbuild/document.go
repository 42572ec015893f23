// Package msbuild provides read-only access to MSBuild-style project XML
// documents (.csproj, .vbproj, .fsproj).
package msbuild

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Document is a loaded project file.
type Document struct {
	// Path is the path the document was loaded from
	Path string

	// Root is the parsed <Project> element
	Root *RootElement
}

// LoadDocument reads and parses a project file from the given path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	var root RootElement
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse project XML: %w", err)
	}

	return &Document{
		Path: path,
		Root: &root,
	}, nil
}

// CompileItems returns the Include paths of all <Compile> items across
// every ItemGroup, excluding auto-generated entries (AutoGen = True).
func (d *Document) CompileItems() []string {
	var items []string
	for _, ig := range d.Root.ItemGroups {
		for _, c := range ig.Compiles {
			if c.Include == "" {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(c.AutoGen), "true") {
				continue
			}
			items = append(items, c.Include)
		}
	}
	return items
}
