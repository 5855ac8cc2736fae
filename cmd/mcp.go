package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/p5chmitz/mdtree/internal/config"
	"github.com/p5chmitz/mdtree/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server exposing document outlines over stdio",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}

		srv := mcp.NewServer(cfg)
		if err := srv.Run(); err != nil {
			log.Fatalf("mcp server failed: %v", err)
		}
	},
}
