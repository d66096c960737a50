// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outreach-engine/internal/align"
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Score alignment between a research report and a background",
	Long: `Align reads a rendered research report and a candidate background from
files, optionally a rendered position-requirements block, and prints the
heuristic alignment analysis.`,
	RunE: runAlign,
}

func runAlign(cmd *cobra.Command, args []string) error {
	professorText, err := readFileFlag(cmd, "research")
	if err != nil {
		return err
	}
	candidateText, err := readFileFlag(cmd, "background")
	if err != nil {
		return err
	}
	positionText, err := readOptionalFileFlag(cmd, "position")
	if err != nil {
		return err
	}

	fmt.Print(align.Render(align.Score(professorText, candidateText, positionText)))
	return nil
}

// readFileFlag reads the file named by a required flag.
func readFileFlag(cmd *cobra.Command, name string) (string, error) {
	path, _ := cmd.Flags().GetString(name)
	if path == "" {
		return "", fmt.Errorf("--%s is required", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading --%s file: %w", name, err)
	}
	return string(data), nil
}

// readOptionalFileFlag reads the file named by a flag, returning "" when
// the flag is unset.
func readOptionalFileFlag(cmd *cobra.Command, name string) (string, error) {
	path, _ := cmd.Flags().GetString(name)
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading --%s file: %w", name, err)
	}
	return string(data), nil
}

func init() {
	alignCmd.Flags().String("research", "", "file containing the rendered research report")
	alignCmd.Flags().String("background", "", "file containing the candidate background")
	alignCmd.Flags().String("position", "", "file containing the rendered position requirements (optional)")

	rootCmd.AddCommand(alignCmd)
}
