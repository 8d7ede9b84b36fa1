package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/atelier-tools/sift"
	mcpAdapter "github.com/atelier-tools/sift/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the engine as an MCP server on stdio, so AI agents can query
and act on the document through tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree()
		if err != nil {
			return err
		}
		engine, err := sift.New(tree,
			sift.WithLogger(newLogger()),
			sift.WithPreferenceStore(newPreferenceStore()),
		)
		if err != nil {
			return err
		}
		if err := engine.LoadPreferences(cmd.Context()); err != nil {
			return err
		}

		// Keep logs off Stdout so they don't corrupt JSON-RPC.
		log.SetOutput(os.Stderr)
		srv := mcpAdapter.NewServer(engine)
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
