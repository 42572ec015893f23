package solution_test

import (
	"path/filepath"
	"testing"

	"github.com/willibrandon/gosln/solution"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", ""},
		{"forward slashes untouched", "src/App/App.csproj", "src/App/App.csproj"},
		{"backslashes converted", `src\App\App.csproj`, "src/App/App.csproj"},
		{"duplicate slashes collapsed", "src//App", "src/App"},
		{"UNC path keeps double slash", `\\server\share\App.csproj`, "//server/share/App.csproj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := solution.NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolveProjectPath(t *testing.T) {
	dir := filepath.Join("/", "sln")

	got := solution.ResolveProjectPath(dir, `App\App.csproj`)
	want := filepath.Join(dir, "App", "App.csproj")
	if got != want {
		t.Errorf("ResolveProjectPath() = %q, want %q", got, want)
	}

	if got := solution.ResolveProjectPath(dir, ""); got != "" {
		t.Errorf("ResolveProjectPath(dir, \"\") = %q, want empty", got)
	}

	abs := filepath.Join("/", "elsewhere", "App.csproj")
	if got := solution.ResolveProjectPath(dir, abs); got != abs {
		t.Errorf("ResolveProjectPath() = %q, want absolute path unchanged %q", got, abs)
	}
}
