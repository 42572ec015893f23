package vsfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind       Kind
		display    string
		projectExt string
		sourceExt  string
	}{
		{KindBasic, "VB.NET", ".vbproj", ".vb"},
		{KindCSharp, "C#", ".csproj", ".cs"},
		{KindFSharp, "F#", ".fsproj", ".fs"},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			assert.Equal(t, tt.display, tt.kind.String())
			assert.Equal(t, tt.projectExt, tt.kind.ProjectExtension())
			assert.Equal(t, tt.sourceExt, tt.kind.SourceExtension())
		})
	}
}

func TestNewProjectFile_BlankArguments(t *testing.T) {
	_, err := NewProjectFile(KindCSharp, "", "App.csproj")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewProjectFile(KindCSharp, "App", "  ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestProjectFile_Validate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.csproj")
	require.NoError(t, os.WriteFile(path, []byte("<Project />"), 0644))

	p, err := NewProjectFile(KindCSharp, "App", path)
	require.NoError(t, err)
	assert.NoError(t, p.Validate())

	// Wrong extension for the kind.
	vb, err := NewProjectFile(KindBasic, "App", path)
	require.NoError(t, err)
	assert.ErrorIs(t, vb.Validate(), ErrWrongExtension)

	missing, err := NewProjectFile(KindCSharp, "Gone", filepath.Join(dir, "Gone.csproj"))
	require.NoError(t, err)
	assert.ErrorIs(t, missing.Validate(), ErrNotFound)
}

func TestProjectFile_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.csproj")

	projectXML := `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="4.0">
  <ItemGroup>
    <Compile Include="Program.cs" />
    <Compile Include="Views\Main.cs" />
    <Compile Include="Resources.Designer.cs">
      <AutoGen>True</AutoGen>
    </Compile>
  </ItemGroup>
</Project>`
	require.NoError(t, os.WriteFile(path, []byte(projectXML), 0644))

	p, err := NewProjectFile(KindCSharp, "App", path)
	require.NoError(t, err)

	files, err := p.Load()
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, filepath.Join(dir, "Program.cs"), files[0].Path())
	// Backslash item paths resolve against the project directory.
	assert.Equal(t, filepath.Join(dir, "Views", "Main.cs"), files[1].Path())
}

func TestProjectFile_Load_MissingFile(t *testing.T) {
	p, err := NewProjectFile(KindCSharp, "App", filepath.Join(t.TempDir(), "Absent.csproj"))
	require.NoError(t, err)

	_, err = p.Load()
	assert.Error(t, err)
}
