// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outreach-engine/internal/aggregate"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Aggregate a professor's research profile from web sources",
	Long: `Research locates a professor's scholar profile, institutional faculty
page, and related web mentions, merges them into one profile, enriches the
paper list with abstracts and document URLs, and prints the full research
report.`,
	RunE: runResearch,
}

func runResearch(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		return fmt.Errorf("--name is required")
	}
	institution, _ := cmd.Flags().GetString("institution")
	department, _ := cmd.Flags().GetString("department")
	maxPapers, _ := cmd.Flags().GetInt("max-papers")

	agg := buildAggregator(pipelineConfig())
	profile := agg.Aggregate(context.Background(), name, institution, department, maxPapers)
	fmt.Print(aggregate.Render(profile))
	return nil
}

func init() {
	researchCmd.Flags().String("name", "", "full name of the professor")
	researchCmd.Flags().String("institution", "", "institution name")
	researchCmd.Flags().String("department", "", "department name")
	researchCmd.Flags().Int("max-papers", 0, "maximum number of papers to enrich (0 = config default)")

	rootCmd.AddCommand(researchCmd)
}
