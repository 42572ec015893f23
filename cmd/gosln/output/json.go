package output

import (
	"encoding/json"
	"io"
	"time"
)

// JSON output types matching the schema contract

// CurrentSchemaVersion is the schema version for all JSON outputs
const CurrentSchemaVersion = "1.0.0"

// SolutionInspectOutput represents the JSON output for the inspect command
type SolutionInspectOutput struct {
	SchemaVersion  string         `json:"schemaVersion"`
	Solution       string         `json:"solution"`
	FormatVersion  int            `json:"formatVersion"`
	BasicProjects  []ProjectEntry `json:"basicProjects"`
	CSharpProjects []ProjectEntry `json:"csharpProjects"`
	FSharpProjects []ProjectEntry `json:"fsharpProjects"`
	WebSites       []ProjectEntry `json:"webSites"`
	ElapsedMs      int64          `json:"elapsedMs"`
}

// ProjectEntry represents one resolved project or web-site reference
type ProjectEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// SolutionFilesOutput represents the JSON output for the files command
type SolutionFilesOutput struct {
	SchemaVersion string         `json:"schemaVersion"`
	Solution      string         `json:"solution"`
	Projects      []ProjectFiles `json:"projects"`
	ElapsedMs     int64          `json:"elapsedMs"`
}

// ProjectFiles lists the source files of one project or web-site directory
type ProjectFiles struct {
	Name  string   `json:"name"`
	Kind  string   `json:"kind"`
	Path  string   `json:"path"`
	Files []string `json:"files"`
}

// WriteJSON writes a JSON object to the specified writer (typically stdout)
// When --format json is used, ALL JSON goes to stdout and ALL messages go to stderr
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// MeasureElapsed returns elapsed time in milliseconds since start
func MeasureElapsed(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}

// NewSolutionInspectOutput creates an inspect output with schema version set
func NewSolutionInspectOutput(solutionPath string) *SolutionInspectOutput {
	return &SolutionInspectOutput{
		SchemaVersion:  CurrentSchemaVersion,
		Solution:       solutionPath,
		BasicProjects:  []ProjectEntry{},
		CSharpProjects: []ProjectEntry{},
		FSharpProjects: []ProjectEntry{},
		WebSites:       []ProjectEntry{},
	}
}

// NewSolutionFilesOutput creates a files output with schema version set
func NewSolutionFilesOutput(solutionPath string) *SolutionFilesOutput {
	return &SolutionFilesOutput{
		SchemaVersion: CurrentSchemaVersion,
		Solution:      solutionPath,
		Projects:      []ProjectFiles{},
	}
}
