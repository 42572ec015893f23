package solution

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// projectRefRegex matches the opening line of a Project block:
//
//	Project("{TYPE-GUID}") = "Name", "Path", "{UNIQUE-GUID}"
//
// GUID bodies are hex digits and hyphens, case-insensitive.
var projectRefRegex = regexp.MustCompile(
	`^Project\("\{([A-Fa-f0-9-]+)\}"\)\s*=\s*"([^"]+)",\s*"([^"]+)",\s*"\{([A-Fa-f0-9-]+)\}"\s*$`,
)

// ReadReference scans forward for the next Project block and returns the
// reference it describes. The second return value is false when the
// input is exhausted without finding a Project opener; that is the
// normal end-of-scan signal, not an error.
//
// A line starting with "Project" that does not match the block grammar,
// an opener with no EndProject closer, or a stray EndProject all fail
// with ErrMalformedProjectReference.
//
// If a path resolver in the table matches (typeGUID, formatVersion),
// it takes over the reader and owns consumption through EndProject; the
// reference's Path is then the resolver's corrected path instead of the
// header's literal one.
func ReadReference(r LineReader, formatVersion int, resolvers *ResolverTable) (Reference, bool, error) {
	for r.HasMore() {
		line, err := r.ReadLine()
		if err != nil {
			return Reference{}, false, err
		}
		trimmed := strings.TrimSpace(line)

		if trimmed == "EndProject" {
			return Reference{}, false, parseError(r, ErrMalformedProjectReference,
				"EndProject without matching Project")
		}

		if !strings.HasPrefix(trimmed, "Project") {
			continue
		}

		ref, err := parseReferenceHeader(r, trimmed)
		if err != nil {
			return Reference{}, false, err
		}

		if resolver := resolvers.For(ref.TypeGUID, formatVersion); resolver != nil {
			corrected, err := resolver.Resolve(r)
			if err != nil {
				return Reference{}, false, err
			}
			ref.Path = corrected
			return ref, true, nil
		}

		// No resolver applies: the header path stands; consume the rest
		// of the block.
		if err := skipToEndProject(r); err != nil {
			return Reference{}, false, err
		}
		return ref, true, nil
	}

	return Reference{}, false, nil
}

// parseReferenceHeader extracts the four header fields from an opening line
func parseReferenceHeader(r LineReader, line string) (Reference, error) {
	matches := projectRefRegex.FindStringSubmatch(line)
	if matches == nil {
		return Reference{}, parseError(r, ErrMalformedProjectReference,
			"cannot parse project reference %q", line)
	}

	typeGUID, name, path, projectGUID := matches[1], matches[2], matches[3], matches[4]

	// The regex constrains the GUID alphabet; uuid.Parse enforces the shape.
	if _, err := uuid.Parse(typeGUID); err != nil {
		return Reference{}, parseError(r, ErrMalformedProjectReference,
			"invalid project type GUID %q", typeGUID)
	}
	if _, err := uuid.Parse(projectGUID); err != nil {
		return Reference{}, parseError(r, ErrMalformedProjectReference,
			"invalid project GUID %q", projectGUID)
	}

	return Reference{
		Name:     name,
		Path:     path,
		TypeGUID: "{" + strings.ToUpper(typeGUID) + "}",
		GUID:     "{" + strings.ToUpper(projectGUID) + "}",
	}, nil
}

// skipToEndProject consumes lines up to and including the block closer
func skipToEndProject(r LineReader) error {
	for r.HasMore() {
		line, err := r.ReadLine()
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "EndProject" {
			return nil
		}
	}
	return parseError(r, ErrMalformedProjectReference,
		"unexpected end of file: missing EndProject")
}
