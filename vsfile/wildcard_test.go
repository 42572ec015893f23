package vsfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandWildcards(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"A.sln", "B.sln", "C.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	t.Run("literal passes through", func(t *testing.T) {
		paths, err := ExpandWildcards([]string{filepath.Join(dir, "A.sln")})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "A.sln")}, paths)
	})

	t.Run("star pattern", func(t *testing.T) {
		paths, err := ExpandWildcards([]string{filepath.Join(dir, "*.sln")})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "A.sln"),
			filepath.Join(dir, "B.sln"),
		}, paths)
	})

	t.Run("question mark pattern", func(t *testing.T) {
		paths, err := ExpandWildcards([]string{filepath.Join(dir, "?.txt")})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "C.txt")}, paths)
	})

	t.Run("pattern with no matches contributes nothing", func(t *testing.T) {
		paths, err := ExpandWildcards([]string{
			filepath.Join(dir, "*.fsproj"),
			filepath.Join(dir, "A.sln"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "A.sln")}, paths)
	})

	t.Run("blank argument rejected", func(t *testing.T) {
		_, err := ExpandWildcards([]string{"  "})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
