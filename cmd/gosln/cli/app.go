// cmd/gosln/cli/app.go
package cli

import (
	"github.com/spf13/cobra"
	"github.com/willibrandon/gosln/cmd/gosln/output"
)

var rootCmd = &cobra.Command{
	Use:   "gosln",
	Short: "Visual Studio solution inspector",
	Long: `gosln reads Visual Studio solution files and resolves the project
and web-site references they contain.

Complete documentation is available at https://github.com/willibrandon/gosln`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// Show help when no command is provided
		_ = cmd.Help()
	},
}

// Console is the global console for CLI commands
var Console *output.Console

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize console
	Console = output.DefaultConsole()

	rootCmd.PersistentFlags().StringP("verbosity", "", "normal", "Display verbosity (quiet, normal, detailed)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		v, _ := cmd.Flags().GetString("verbosity")
		Console.SetVerbosity(output.ParseVerbosity(v))
	}
}

// SetupVersion configures version information after variables are set
func SetupVersion() {
	rootCmd.SetVersionTemplate(GetFullVersion() + "\n")
	rootCmd.Version = GetVersion()
}

// AddCommand adds a command to the root command
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
