package solution

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/willibrandon/gosln/observability"
	"github.com/willibrandon/gosln/vsfile"
)

// Resolver reads a solution file and routes every recognized project
// reference into a typed bucket. Buckets are cleared at the start of
// each Load; after a failed Load their contents are undefined and the
// format version is 0 (callers must not use them). A Resolver is not
// safe for concurrent Load calls; distinct Resolvers are independent.
type Resolver struct {
	resolvers *ResolverTable
	logger    observability.Logger

	formatVersion  int
	basicProjects  []vsfile.ProjectFile
	csharpProjects []vsfile.ProjectFile
	fsharpProjects []vsfile.ProjectFile
	webSites       []vsfile.WebSiteDirectory
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLogger attaches a structured logger; the default discards all output
func WithLogger(logger observability.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// WithResolverTable replaces the built-in path resolver strategy table
func WithResolverTable(table *ResolverTable) Option {
	return func(r *Resolver) { r.resolvers = table }
}

// NewResolver creates a Resolver with the built-in strategy table
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		resolvers: NewResolverTable(),
		logger:    observability.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load parses the solution file at path and fills the typed buckets.
// Any previously loaded contents are discarded first, so a failed Load
// cannot resurrect stale data. All stored paths are resolved against
// the solution file's own directory.
func (s *Resolver) Load(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("cannot access solution file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	if strings.ToLower(filepath.Ext(path)) != ".sln" {
		return fmt.Errorf("%s: %w", path, ErrWrongExtension)
	}

	// Clear-on-entry.
	s.formatVersion = 0
	s.basicProjects = nil
	s.csharpProjects = nil
	s.fsharpProjects = nil
	s.webSites = nil

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	solutionDir := filepath.Dir(absPath)

	reader, err := OpenFileLineReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	version, err := ParseHeader(reader)
	if err != nil {
		return annotate(err, path)
	}
	s.formatVersion = version
	s.logger.Debug("Parsed solution header {Path} with format version {FormatVersion}", path, version)

	for {
		ref, ok, err := ReadReference(reader, version, s.resolvers)
		if err != nil {
			return annotate(err, path)
		}
		if !ok {
			break
		}
		if err := s.dispatch(solutionDir, ref); err != nil {
			return annotate(err, path)
		}
	}

	if err := reader.Err(); err != nil {
		return fmt.Errorf("error reading solution file %s: %w", path, err)
	}
	return nil
}

// dispatch routes one reference into its typed bucket. Unrecognized
// type GUIDs are skipped: solution files commonly reference project
// types outside the support matrix and must not abort the scan.
func (s *Resolver) dispatch(solutionDir string, ref Reference) error {
	resolved := ResolveProjectPath(solutionDir, ref.Path)

	switch ref.TypeGUID {
	case ProjectTypeVBProject:
		return s.addProject(&s.basicProjects, vsfile.KindBasic, ref, resolved)
	case ProjectTypeCSProject, ProjectTypeCSProjectSDK:
		return s.addProject(&s.csharpProjects, vsfile.KindCSharp, ref, resolved)
	case ProjectTypeFSProject:
		return s.addProject(&s.fsharpProjects, vsfile.KindFSharp, ref, resolved)
	case ProjectTypeWebSite:
		site, err := vsfile.NewWebSiteDirectory(ref.Name, resolved)
		if err != nil {
			return err
		}
		s.webSites = append(s.webSites, site)
		s.logger.Verbose("Resolved web site {Name} at {Path}", ref.Name, resolved)
		return nil
	default:
		s.logger.Verbose("Skipping unsupported project type {TypeGUID} for {Name}", ref.TypeGUID, ref.Name)
		return nil
	}
}

func (s *Resolver) addProject(bucket *[]vsfile.ProjectFile, kind vsfile.Kind, ref Reference, resolved string) error {
	project, err := vsfile.NewProjectFile(kind, ref.Name, resolved)
	if err != nil {
		return err
	}
	*bucket = append(*bucket, project)
	s.logger.Verbose("Resolved {Kind} project {Name} at {Path}", kind.String(), ref.Name, resolved)
	return nil
}

// FormatVersion returns the major format version from the most recently
// parsed header, or 0 before the first successful Load
func (s *Resolver) FormatVersion() int {
	return s.formatVersion
}

// BasicProjects returns the VB.NET project bucket as a read-only view
func (s *Resolver) BasicProjects() []vsfile.ProjectFile {
	return copyProjects(s.basicProjects)
}

// CSharpProjects returns the C# project bucket as a read-only view
func (s *Resolver) CSharpProjects() []vsfile.ProjectFile {
	return copyProjects(s.csharpProjects)
}

// FSharpProjects returns the F# project bucket as a read-only view
func (s *Resolver) FSharpProjects() []vsfile.ProjectFile {
	return copyProjects(s.fsharpProjects)
}

// WebSites returns the web-site directory bucket as a read-only view
func (s *Resolver) WebSites() []vsfile.WebSiteDirectory {
	out := make([]vsfile.WebSiteDirectory, len(s.webSites))
	copy(out, s.webSites)
	return out
}

func copyProjects(projects []vsfile.ProjectFile) []vsfile.ProjectFile {
	out := make([]vsfile.ProjectFile, len(projects))
	copy(out, projects)
	return out
}

// annotate stamps the solution file path onto ParseErrors for context
func annotate(err error, path string) error {
	if pe, ok := err.(*ParseError); ok && pe.FilePath == "" {
		pe.FilePath = path
		return pe
	}
	return err
}
