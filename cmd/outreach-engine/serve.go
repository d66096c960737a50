// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/pdiddy/outreach-engine/internal/toolapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pipeline as MCP tools over stdio",
	Long: `Serve exposes research_professor, extract_position_requirements,
analyze_alignment, generate_email, and search_candidate_profile as MCP
tools on stdin/stdout for agent hosts.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	store, err := openCandidateStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	s := toolapi.NewServer(toolapi.Deps{
		Researcher: buildAggregator(cfg),
		Positions:  buildPositionExtractor(cfg),
		CV:         store,
		Log:        logger,
	})
	return server.ServeStdio(s)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
