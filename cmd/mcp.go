package cmd

import (
	"github.com/devlens/devlens/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the DevLens MCP server",
	Long:  `Launch an MCP server that allows AI agents to score profiles and analyze commits via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean: stdio carries the protocol, so all human
		// output has to stay on stderr.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, profileSource, cacheManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
