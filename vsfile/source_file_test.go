package vsfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSourceFile(t *testing.T) {
	sf, err := NewSourceFile(filepath.Join("src", "Program.cs"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("src", "Program.cs"), sf.Path())
	assert.Equal(t, "Program.cs", sf.Name())
	assert.Equal(t, ".cs", sf.Extension())
}

func TestNewSourceFile_BlankPath(t *testing.T) {
	for _, path := range []string{"", "   ", "\t"} {
		_, err := NewSourceFile(path)
		assert.ErrorIs(t, err, ErrInvalidArgument, "path %q", path)
	}
}

func TestSourceFile_Extension_Lowercased(t *testing.T) {
	sf, err := NewSourceFile("Module1.VB")
	require.NoError(t, err)
	assert.Equal(t, ".vb", sf.Extension())
}

func TestSourceFile_Validate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Program.cs")
	require.NoError(t, os.WriteFile(path, []byte("class Program {}"), 0644))

	sf, err := NewSourceFile(path)
	require.NoError(t, err)

	assert.NoError(t, sf.Validate(".cs"))
	assert.ErrorIs(t, sf.Validate(".vb"), ErrWrongExtension)

	missing, err := NewSourceFile(filepath.Join(dir, "Absent.cs"))
	require.NoError(t, err)
	assert.ErrorIs(t, missing.Validate(".cs"), ErrNotFound)
}
