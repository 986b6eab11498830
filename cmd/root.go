package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the n8n-mcp application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "n8n-mcp",
	Short: "MCP server for n8n workflow automation",
	Long: `n8n-mcp exposes a fixed catalog of n8n operations (list, inspect,
execute, activate and deactivate workflows, inspect executions) as MCP
tools, so AI assistants can drive an n8n instance through the Model
Context Protocol.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is called from the main package to inject the application
// version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles
// subcommands and flags. This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "n8n-mcp version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
