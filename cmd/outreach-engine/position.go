// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var positionCmd = &cobra.Command{
	Use:   "position [url]",
	Short: "Extract PhD position requirements from a job posting",
	Long: `Position fetches a job-posting URL and extracts the position title,
department, institution, application deadline, required qualifications,
research areas, and contact email, printing them as a sectioned block.`,
	Args: cobra.ExactArgs(1),
	RunE: runPosition,
}

func runPosition(cmd *cobra.Command, args []string) error {
	e := buildPositionExtractor(pipelineConfig())
	fmt.Print(e.Report(context.Background(), args[0]))
	return nil
}

func init() {
	rootCmd.AddCommand(positionCmd)
}
