// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const report = `
=== COMPREHENSIVE RESEARCH PROFILE ===
Professor: Jane Doe
Institution: MIT
Department: EECS
=== CITATION METRICS ===
Total Citations: 12345
h-index: 42
i10-index: 88
=== RESEARCH INTERESTS ===
machine learning, optimization
=== TOP PUBLICATIONS ===

1. Learning to Learn
   Authors: J Doe, A Smith
   Year: 2019
   Citations: 250
   Abstract: We meta-learn optimizers...
   URL: https://mit.edu/l2l.pdf

=== RECENT PROJECTS ===
• Autonomy Lab testbed

=== LAB WEBSITE ===
https://autonomylab.mit.edu
`

const background = `JOHN SMITH
MSc in Computer Science, Somewhere University

Skills
Python, Machine Learning, Optimization

Experience
Research Assistant
Built machine learning pipelines for climate data

Contact: john.smith@uni.edu`

func TestComposeFullInputs(t *testing.T) {
	email := Compose(Request{
		ProfessorName:     "Jane Doe",
		ProfessorReport:   report,
		CandidateText:     background,
		PositionText:      "=== PhD POSITION REQUIREMENTS ===\nPosition Title: PhD Position in ML\n",
		AdditionalContext: "I will attend NeurIPS this December.",
		AlignmentText:     "=== RESEARCH ALIGNMENT ANALYSIS ===\n\nResearch Interests Alignment: 50.0%\n",
	})

	assert.True(t, strings.HasPrefix(email, "Subject: PhD Application - Jane Doe - JOHN SMITH\n"))
	assert.Contains(t, email, "Dear Professor Doe,")
	assert.Contains(t, email, "your research at MIT")
	assert.Contains(t, email, "As a recent MSc from Somewhere University")
	assert.Contains(t, email, "your work in machine learning, optimization")
	assert.Contains(t, email, "• Learning to Learn...")
	assert.Contains(t, email, "• Autonomy Lab testbed")
	assert.Contains(t, email, "Python, Machine Learning, Optimization")
	assert.Contains(t, email, "• Research Assistant: Built machine learning pipelines")
	assert.Contains(t, email, "Position Title: PhD Position in ML")
	assert.Contains(t, email, "Research Interests Alignment: 50.0%")
	assert.Contains(t, email, "I will attend NeurIPS this December.")
	assert.Contains(t, email, "Best regards,\nJOHN SMITH\njohn.smith@uni.edu\n")
}

func TestComposeEmptyInputsFallsBackToPlaceholders(t *testing.T) {
	email := Compose(Request{ProfessorName: "Garcia"})

	require.NotEmpty(t, email)
	assert.True(t, strings.HasPrefix(email, "Subject: Research Interest Inquiry - Professor - Applicant\n"))
	assert.Contains(t, email, "Dear Professor Garcia,")
	assert.Contains(t, email, "your research at your institution")
	assert.Contains(t, email, "As a recent graduate from my university")
	assert.Contains(t, email, "your work in your field")
	assert.Contains(t, email, "Your notable publications")
	assert.Contains(t, email, "Relevant technical skills")
	assert.Contains(t, email, "Best regards,\nYour Name\n")
	assert.NotContains(t, email, "PhD position you have advertised",
		"position section omitted without requirements")
}

func TestComposeLastNameSalutation(t *testing.T) {
	email := Compose(Request{ProfessorName: "Maria de la Cruz"})
	assert.Contains(t, email, "Dear Professor Cruz,")
}

func TestComposeNoMarkup(t *testing.T) {
	email := Compose(Request{
		ProfessorName:   "Jane Doe",
		ProfessorReport: report,
		CandidateText:   background,
	})
	assert.NotContains(t, email, "<")
	assert.NotContains(t, email, "**")
	assert.NotContains(t, email, "# ")
}

func TestNotSpecifiedInterestsTreatedAsMissing(t *testing.T) {
	minimal := "Professor: Jane Doe\n=== RESEARCH INTERESTS ===\nNot specified\n=== TOP PUBLICATIONS ===\n"
	email := Compose(Request{ProfessorName: "Jane Doe", ProfessorReport: minimal})
	assert.Contains(t, email, "your work in your field")
}
