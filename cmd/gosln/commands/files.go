package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/willibrandon/gosln/cmd/gosln/output"
	"github.com/willibrandon/gosln/solution"
	"github.com/willibrandon/gosln/vsfile"
)

type filesOptions struct {
	format string
}

// NewFilesCommand creates the files command
func NewFilesCommand(console *output.Console) *cobra.Command {
	opts := &filesOptions{
		format: "console",
	}

	cmd := &cobra.Command{
		Use:   "files [solution.sln ...]",
		Short: "List the source files of every project in a solution",
		Long: `Parse one or more solution files, load each referenced project or
web-site directory, and list its compiled source files. Project files
are read from the project XML; web-site directories are scanned on
disk. Missing projects produce a warning, not a failure.

Examples:
  gosln files MySolution.sln
  gosln files --format json MySolution.sln`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(console, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "console", "The output format: console or json")

	return cmd
}

func runFiles(console *output.Console, opts *filesOptions, args []string) error {
	paths, err := resolveSolutionArgs(args)
	if err != nil {
		return err
	}

	for _, path := range paths {
		start := time.Now()

		resolver := solution.NewResolver(solution.WithLogger(commandLogger(console)))
		if err := resolver.Load(path); err != nil {
			return err
		}

		out := output.NewSolutionFilesOutput(path)

		var projects []vsfile.ProjectFile
		projects = append(projects, resolver.BasicProjects()...)
		projects = append(projects, resolver.CSharpProjects()...)
		projects = append(projects, resolver.FSharpProjects()...)

		for _, p := range projects {
			if err := p.Validate(); err != nil {
				console.Warning("Project file not found: %s", p.Path())
				continue
			}
			files, err := p.Load()
			if err != nil {
				console.Warning("Project '%s': %v", p.Path(), err)
				continue
			}
			out.Projects = append(out.Projects, projectFiles(p.Name(), p.Kind().String(), p.Path(), files))
		}

		for _, site := range resolver.WebSites() {
			if err := site.Validate(); err != nil {
				console.Warning("Web site directory not found: %s", site.Path())
				continue
			}
			files, err := site.Load()
			if err != nil {
				console.Warning("Web site '%s': %v", site.Path(), err)
				continue
			}
			out.Projects = append(out.Projects, projectFiles(site.Name(), "web site", site.Path(), files))
		}

		if opts.format == "json" {
			out.ElapsedMs = output.MeasureElapsed(start)
			if err := output.WriteJSON(os.Stdout, out); err != nil {
				return err
			}
			continue
		}

		console.Header("%s", path)
		for _, p := range out.Projects {
			console.Info("%s (%s)", p.Name, p.Kind)
			for _, f := range p.Files {
				console.Detail("  %s", f)
			}
			console.Info("  %d source file(s)", len(p.Files))
		}
	}

	return nil
}

func projectFiles(name, kind, path string, files []vsfile.SourceFile) output.ProjectFiles {
	pf := output.ProjectFiles{
		Name:  name,
		Kind:  kind,
		Path:  path,
		Files: []string{},
	}
	for _, f := range files {
		pf.Files = append(pf.Files, f.Path())
	}
	return pf
}
