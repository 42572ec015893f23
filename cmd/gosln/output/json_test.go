package output

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestWriteJSON_InspectOutput(t *testing.T) {
	out := NewSolutionInspectOutput("App.sln")
	out.FormatVersion = 12
	out.CSharpProjects = append(out.CSharpProjects, ProjectEntry{Name: "App", Path: "/sln/App/App.csproj"})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, out); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded SolutionInspectOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.SchemaVersion != CurrentSchemaVersion {
		t.Errorf("schemaVersion = %q, want %q", decoded.SchemaVersion, CurrentSchemaVersion)
	}
	if decoded.FormatVersion != 12 {
		t.Errorf("formatVersion = %d, want 12", decoded.FormatVersion)
	}
	if len(decoded.CSharpProjects) != 1 || decoded.CSharpProjects[0].Name != "App" {
		t.Errorf("csharpProjects = %+v", decoded.CSharpProjects)
	}
	// Empty buckets serialize as [], not null.
	if decoded.BasicProjects == nil {
		t.Error("basicProjects serialized as null, want []")
	}
}

func TestWriteJSON_FilesOutput(t *testing.T) {
	out := NewSolutionFilesOutput("App.sln")
	out.Projects = append(out.Projects, ProjectFiles{
		Name:  "App",
		Kind:  "C#",
		Path:  "/sln/App/App.csproj",
		Files: []string{"/sln/App/Program.cs"},
	})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, out); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded SolutionFilesOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Projects) != 1 || len(decoded.Projects[0].Files) != 1 {
		t.Errorf("projects = %+v", decoded.Projects)
	}
}
