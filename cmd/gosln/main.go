// cmd/gosln/main.go
package main

import (
	"fmt"
	"os"

	"github.com/willibrandon/gosln/cmd/gosln/cli"
	"github.com/willibrandon/gosln/cmd/gosln/commands"
)

// Version information (set via ldflags during build)
var (
	version = "0.0.0-dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// Set version info
	cli.Version = version
	cli.Commit = commit
	cli.Date = date
	cli.BuiltBy = builtBy

	// Setup version after variables are set
	cli.SetupVersion()

	// Register commands
	cli.AddCommand(commands.NewVersionCommand(cli.Console))
	cli.AddCommand(commands.NewInspectCommand(cli.Console))
	cli.AddCommand(commands.NewFilesCommand(cli.Console))

	// Execute CLI
	if err := cli.Execute(); err != nil {
		// Print error to stderr since SilenceErrors is true in rootCmd
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
