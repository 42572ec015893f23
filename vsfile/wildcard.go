package vsfile

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandWildcards expands file-path arguments containing * or ? via the
// filesystem; literal arguments pass through unchanged. A pattern with
// no matches contributes nothing. Blank arguments are rejected.
func ExpandWildcards(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			return nil, fmt.Errorf("path argument: %w", ErrInvalidArgument)
		}

		if !strings.ContainsAny(arg, "*?") {
			paths = append(paths, arg)
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad wildcard pattern %q: %w", arg, err)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}
