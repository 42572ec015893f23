package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/willibrandon/gosln/cmd/gosln/output"
	"github.com/willibrandon/gosln/observability"
	"github.com/willibrandon/gosln/solution"
	"github.com/willibrandon/gosln/vsfile"
)

type inspectOptions struct {
	format string
}

// NewInspectCommand creates the inspect command
func NewInspectCommand(console *output.Console) *cobra.Command {
	opts := &inspectOptions{
		format: "console",
	}

	cmd := &cobra.Command{
		Use:   "inspect [solution.sln ...]",
		Short: "List the project references of a solution",
		Long: `Parse one or more solution files and list the resolved project and
web-site references grouped by type.

Wildcards are expanded. With no arguments, the current directory is
searched for a single solution file.

Examples:
  gosln inspect MySolution.sln
  gosln inspect src/*.sln
  gosln inspect --format json MySolution.sln`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(console, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "console", "The output format: console or json")

	return cmd
}

func runInspect(console *output.Console, opts *inspectOptions, args []string) error {
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

		if opts.format == "json" {
			out := output.NewSolutionInspectOutput(path)
			out.FormatVersion = resolver.FormatVersion()
			out.BasicProjects = projectEntries(resolver.BasicProjects())
			out.CSharpProjects = projectEntries(resolver.CSharpProjects())
			out.FSharpProjects = projectEntries(resolver.FSharpProjects())
			for _, site := range resolver.WebSites() {
				out.WebSites = append(out.WebSites, output.ProjectEntry{Name: site.Name(), Path: site.Path()})
			}
			out.ElapsedMs = output.MeasureElapsed(start)
			if err := output.WriteJSON(os.Stdout, out); err != nil {
				return err
			}
			continue
		}

		console.Header("%s (format version %d)", path, resolver.FormatVersion())
		printProjects(console, "VB.NET projects", resolver.BasicProjects())
		printProjects(console, "C# projects", resolver.CSharpProjects())
		printProjects(console, "F# projects", resolver.FSharpProjects())
		if sites := resolver.WebSites(); len(sites) > 0 {
			console.Info("Web sites:")
			for _, site := range sites {
				console.Info("  %s  %s", site.Name(), site.Path())
			}
		}
	}

	return nil
}

func printProjects(console *output.Console, label string, projects []vsfile.ProjectFile) {
	if len(projects) == 0 {
		return
	}
	console.Info("%s:", label)
	for _, p := range projects {
		console.Info("  %s  %s", p.Name(), p.Path())
	}
}

func projectEntries(projects []vsfile.ProjectFile) []output.ProjectEntry {
	entries := make([]output.ProjectEntry, 0, len(projects))
	for _, p := range projects {
		entries = append(entries, output.ProjectEntry{Name: p.Name(), Path: p.Path()})
	}
	return entries
}

// commandLogger maps console verbosity to a structured logger on stderr
func commandLogger(console *output.Console) observability.Logger {
	if console.GetVerbosity() >= output.VerbosityDetailed {
		return observability.NewLogger(os.Stderr, observability.VerboseLevel)
	}
	return observability.NewNullLogger()
}
