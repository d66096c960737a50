// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"fmt"
	"strings"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

const topPublications = 5

// Render formats a profile as the sectioned plain-text research report
// consumed by the alignment and email stages. Optional sections are
// omitted entirely when empty.
func Render(p *types.ProfessorProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== COMPREHENSIVE RESEARCH PROFILE ===\n")
	fmt.Fprintf(&b, "Professor: %s\n", p.Name)
	fmt.Fprintf(&b, "Institution: %s\n", p.Institution)
	fmt.Fprintf(&b, "Department: %s\n", p.Department)
	fmt.Fprintf(&b, "=== CITATION METRICS ===\n")
	fmt.Fprintf(&b, "Total Citations: %d\n", p.Citations)
	fmt.Fprintf(&b, "h-index: %d\n", p.HIndex)
	fmt.Fprintf(&b, "i10-index: %d\n", p.I10Index)
	fmt.Fprintf(&b, "=== RESEARCH INTERESTS ===\n")
	if len(p.ResearchInterests) > 0 {
		fmt.Fprintf(&b, "%s\n", strings.Join(p.ResearchInterests, ", "))
	} else {
		fmt.Fprintf(&b, "Not specified\n")
	}
	fmt.Fprintf(&b, "=== TOP PUBLICATIONS ===\n")

	papers := p.Papers
	if len(papers) > topPublications {
		papers = papers[:topPublications]
	}
	for i, paper := range papers {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, paper.Title)
		fmt.Fprintf(&b, "   Authors: %s\n", paper.Authors)
		fmt.Fprintf(&b, "   Year: %s\n", paper.Year)
		fmt.Fprintf(&b, "   Citations: %d\n", paper.Citations)
		fmt.Fprintf(&b, "   Abstract: %s...\n", truncate(paper.Abstract, 300))
		fmt.Fprintf(&b, "   URL: %s\n", paper.URL)
	}

	if len(p.RecentProjects) > 0 {
		fmt.Fprintf(&b, "\n=== RECENT PROJECTS ===\n")
		for _, project := range p.RecentProjects {
			fmt.Fprintf(&b, "• %s\n", project)
		}
	}

	if p.LabWebsite != "" {
		fmt.Fprintf(&b, "\n=== LAB WEBSITE ===\n%s\n", p.LabWebsite)
	}

	return b.String()
}

// truncate bounds a string to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
