package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"n8n-mcp/internal/mcpserver"
)

// newToolsCmd creates the Cobra command that prints the tool catalog.
// Useful for checking what an MCP client will see without wiring one up.
func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools exposed by the server",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, tool := range mcpserver.Tools() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n", tool.Name, tool.Description)

				required := make(map[string]bool, len(tool.InputSchema.Required))
				for _, name := range tool.InputSchema.Required {
					required[name] = true
				}

				names := make([]string, 0, len(tool.InputSchema.Properties))
				for name := range tool.InputSchema.Properties {
					names = append(names, name)
				}
				sort.Strings(names)

				for _, name := range names {
					qualifier := "optional"
					if required[name] {
						qualifier = "required"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s (%s)\n", name, qualifier)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
		},
	}
}

func init() {
	rootCmd.AddCommand(newToolsCmd())
}
