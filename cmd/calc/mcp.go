package main

import (
	"go-chi-calculator/internal/mcpserver"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the calculator as MCP tools over stdio",
	Long: `Serve the calculator as Model Context Protocol tools over stdin and
stdout. Logs go to stderr so they never corrupt the protocol stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpserver.NewServer(current.svc, version).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
