package solution

import (
	"regexp"
	"strings"
)

// PathResolver corrects a reference's stored path for project types
// whose header path is not the real relative path. A resolver is handed
// the line reader positioned immediately after the block's opening line
// and owns consumption of the block through EndProject.
type PathResolver interface {
	// Resolve consumes the remainder of the current Project block and
	// returns the corrected relative path
	Resolve(r LineReader) (string, error)
}

// resolverEntry keys a resolver factory by project type and the minimum
// solution format version it applies to
type resolverEntry struct {
	typeGUID         string
	minFormatVersion int
	factory          func() PathResolver
}

// ResolverTable is the statically registered set of path resolver
// strategies. Most project types need no entry: the header's literal
// path is already correct and the table simply reports no match.
type ResolverTable struct {
	entries []resolverEntry
}

// NewResolverTable creates a table with the built-in strategies registered
func NewResolverTable() *ResolverTable {
	t := &ResolverTable{}
	t.Register(ProjectTypeWebSite, 12, func() PathResolver { return &WebSitePathResolver{} })
	return t
}

// Register adds a strategy for the given project type GUID, applicable
// from minFormatVersion upward
func (t *ResolverTable) Register(typeGUID string, minFormatVersion int, factory func() PathResolver) {
	t.entries = append(t.entries, resolverEntry{
		typeGUID:         strings.ToUpper(typeGUID),
		minFormatVersion: minFormatVersion,
		factory:          factory,
	})
}

// For returns the resolver registered for (typeGUID, formatVersion),
// or nil when no strategy applies
func (t *ResolverTable) For(typeGUID string, formatVersion int) PathResolver {
	upper := strings.ToUpper(typeGUID)
	for _, e := range t.entries {
		if e.typeGUID == upper && formatVersion >= e.minFormatVersion {
			return e.factory()
		}
	}
	return nil
}

// SlnRelativePathKey is the ProjectSection key holding a web site's real
// relative path
const SlnRelativePathKey = "SlnRelativePath"

// sectionEntryRegex parses ProjectSection entries of the form KEY = "VALUE"
var sectionEntryRegex = regexp.MustCompile(`^(\S+)\s*=\s*"([^"]*)"$`)

// WebSitePathResolver recovers the on-disk path of a web-site project.
// The header path of a web-site reference is a generated display name
// (e.g. "http://localhost/WebSite"); the real relative path lives in the
// block's ProjectSection under the SlnRelativePath key.
type WebSitePathResolver struct{}

// Resolve implements PathResolver.Resolve. It scans section entries for
// SlnRelativePath, then drains the block through EndProject so the
// caller can treat the block as fully consumed.
func (*WebSitePathResolver) Resolve(r LineReader) (string, error) {
	path := ""
	found := false

	for r.HasMore() {
		line, err := r.ReadLine()
		if err != nil {
			return "", err
		}
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "EndProject":
			if !found {
				return "", parseError(r, ErrMalformedProjectReference,
					"website project has no %s entry", SlnRelativePathKey)
			}
			return path, nil

		case trimmed == "EndProjectSection":
			if !found {
				return "", parseError(r, ErrMalformedProjectReference,
					"website project has no %s entry", SlnRelativePathKey)
			}

		case !found:
			if matches := sectionEntryRegex.FindStringSubmatch(trimmed); matches != nil {
				if matches[1] == SlnRelativePathKey {
					path = matches[2]
					found = true
				}
			}
		}
	}

	return "", parseError(r, ErrMalformedProjectReference,
		"unexpected end of file: missing EndProject")
}
