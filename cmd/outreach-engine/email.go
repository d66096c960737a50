// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outreach-engine/internal/compose"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Assemble a personalized outreach email",
	Long: `Email mines the rendered research report and the candidate background,
optionally a position-requirements block and an alignment analysis, and
prints the assembled outreach email.`,
	RunE: runEmail,
}

func runEmail(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		return fmt.Errorf("--name is required")
	}
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
	alignmentText, err := readOptionalFileFlag(cmd, "alignment")
	if err != nil {
		return err
	}
	extra, _ := cmd.Flags().GetString("context")

	fmt.Print(compose.Compose(compose.Request{
		ProfessorName:     name,
		ProfessorReport:   professorText,
		CandidateText:     candidateText,
		PositionText:      positionText,
		AdditionalContext: extra,
		AlignmentText:     alignmentText,
	}))
	return nil
}

func init() {
	emailCmd.Flags().String("name", "", "full name of the professor")
	emailCmd.Flags().String("research", "", "file containing the rendered research report")
	emailCmd.Flags().String("background", "", "file containing the candidate background")
	emailCmd.Flags().String("position", "", "file containing the rendered position requirements (optional)")
	emailCmd.Flags().String("alignment", "", "file containing the rendered alignment analysis (optional)")
	emailCmd.Flags().String("context", "", "additional context for the closing paragraph")

	rootCmd.AddCommand(emailCmd)
}
