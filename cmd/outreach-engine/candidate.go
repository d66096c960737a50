// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outreach-engine/internal/candidate"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Manage the candidate CV store (load, search)",
	Long: `Candidate manages the local CV database. Load extracts text from a CV
PDF and stores it as searchable chunks; search ranks stored chunks against
a query.`,
}

var candidateLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a CV PDF into the candidate store",
	RunE:  runCandidateLoad,
}

func runCandidateLoad(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	cvPath, _ := cmd.Flags().GetString("cv")
	if cvPath == "" {
		cvPath = cfg.Candidate.CVPath
	}
	if cvPath == "" {
		return fmt.Errorf("--cv or candidate.cv_path is required")
	}

	store, err := openCandidateStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Load(context.Background(), cvPath)
	if err != nil {
		return err
	}
	fmt.Printf("Successfully loaded and processed the CV (%d chunks).\n", n)
	return nil
}

var candidateSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the loaded CV for relevant passages",
	Args:  cobra.ExactArgs(1),
	RunE:  runCandidateSearch,
}

func runCandidateSearch(cmd *cobra.Command, args []string) error {
	store, err := openCandidateStore(pipelineConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	chunks, err := store.Search(context.Background(), args[0], limit)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	fmt.Print(candidate.RenderResults(chunks))
	return nil
}

func init() {
	candidateLoadCmd.Flags().String("cv", "", "path to the CV PDF (default: candidate.cv_path from config)")
	candidateSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")

	candidateCmd.AddCommand(candidateLoadCmd)
	candidateCmd.AddCommand(candidateSearchCmd)

	rootCmd.AddCommand(candidateCmd)
}
