package solution

import (
	"strconv"
	"strings"
)

// HeaderPrefix is the fixed text every solution file header carries
const HeaderPrefix = "Microsoft Visual Studio Solution File, Format Version"

// headerWindow is how many leading lines may hold the header
// (a BOM or a blank first line is tolerated)
const headerWindow = 2

// ParseHeader reads at most two lines from the reader looking for the
// solution file header and returns the major format version, e.g. 12
// for "Format Version 12.00".
//
// A missing header fails with ErrMalformedSolutionFile; a header whose
// version suffix does not parse as a dotted version number fails with
// ErrMalformedHeader.
func ParseHeader(r LineReader) (int, error) {
	for i := 0; i < headerWindow && r.HasMore(); i++ {
		line, err := r.ReadLine()
		if err != nil {
			return 0, err
		}

		idx := strings.Index(line, HeaderPrefix)
		if idx < 0 {
			continue
		}

		// Trim defensively: trailing carriage-return artifacts on the
		// version suffix must not fail numeric parsing.
		suffix := strings.TrimSpace(line[idx+len(HeaderPrefix):])
		major, ok := parseMajorVersion(suffix)
		if !ok {
			return 0, parseError(r, ErrMalformedHeader,
				"cannot parse format version %q", suffix)
		}
		return major, nil
	}

	return 0, &ParseError{
		Line:    r.Line(),
		Message: "no solution header in the first two lines",
		Err:     ErrMalformedSolutionFile,
	}
}

// parseMajorVersion extracts the major component of a dotted version number
func parseMajorVersion(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	majorPart, _, _ := strings.Cut(s, ".")
	major, err := strconv.Atoi(majorPart)
	if err != nil || major < 0 {
		return 0, false
	}
	return major, true
}
