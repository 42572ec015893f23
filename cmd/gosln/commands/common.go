package commands

import (
	"fmt"

	"github.com/willibrandon/gosln/solution"
	"github.com/willibrandon/gosln/vsfile"
)

// resolveSolutionArgs turns CLI arguments into solution file paths.
// Wildcards are expanded; with no arguments the current directory is
// searched for a single solution file.
func resolveSolutionArgs(args []string) ([]string, error) {
	if len(args) == 0 {
		detector := solution.NewDetector(".")
		result, err := detector.DetectSolution()
		if err != nil {
			return nil, err
		}
		if !result.Found {
			return nil, fmt.Errorf("no solution file found in the current directory")
		}
		if result.Ambiguous {
			return nil, fmt.Errorf("multiple solution files found; specify one explicitly")
		}
		return []string{result.SolutionPath}, nil
	}

	paths, err := vsfile.ExpandWildcards(args)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files match the given arguments")
	}
	return paths, nil
}
