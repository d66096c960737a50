// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package align

import (
	"fmt"
	"strings"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

// Render formats an alignment report as the plain-text analysis block
// embedded into outreach emails. Sub-blocks render in a fixed order; the
// position block only appears when position requirements were scored.
func Render(report types.AlignmentReport) string {
	var b strings.Builder
	b.WriteString("=== RESEARCH ALIGNMENT ANALYSIS ===\n\n")

	blocks := []string{
		renderInterests(report.Interests),
		renderSkills(report.Skills),
		renderCount("Experience Alignment", "relevant experiences found", report.Experience),
		renderCount("Project Alignment", "relevant projects found", report.Projects),
	}
	if report.Position != nil {
		blocks = append(blocks, renderPosition(*report.Position))
	}

	for _, block := range blocks {
		b.WriteString(block)
		b.WriteString("\n\n")
	}
	return b.String()
}

func renderInterests(ia types.InterestAlignment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research Interests Alignment: %.1f%%\n", ia.Percent)
	for _, detail := range capped(ia.Details, 5) {
		fmt.Fprintf(&b, "  • %s\n", detail)
	}
	return b.String()
}

func renderSkills(sa types.SkillsAlignment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skills Alignment: %d/%d keywords matched\n", len(sa.Matched), sa.Total)
	if len(sa.Matched) > 0 {
		b.WriteString("Aligned skills:\n")
		for _, m := range capped(sa.Matched, 5) {
			fmt.Fprintf(&b, "  • %s\n", m)
		}
	}
	if len(sa.Gaps) > 0 {
		fmt.Fprintf(&b, "Potential gaps: %s...\n", strings.Join(capped(sa.Gaps, 3), ", "))
	}
	return b.String()
}

func renderCount(label, noun string, ca types.CountAlignment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d %s\n", label, len(ca.Matches), noun)
	for _, m := range capped(ca.Matches, 3) {
		fmt.Fprintf(&b, "  • %s\n", m)
	}
	return b.String()
}

func renderPosition(pa types.PositionAlignment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Position Requirements Alignment: %d/%d qualifications met\n", len(pa.Met), pa.Total)
	if len(pa.Met) > 0 {
		b.WriteString("Met qualifications:\n")
		for _, q := range pa.Met {
			fmt.Fprintf(&b, "  • %s ✓\n", q)
		}
	}
	if len(pa.Unmet) > 0 {
		b.WriteString("Unmet qualifications:\n")
		for _, q := range pa.Unmet {
			fmt.Fprintf(&b, "  • %s ✗\n", q)
		}
	}
	if len(pa.AreaMatches) > 0 {
		b.WriteString("Research area alignment:\n")
		for _, a := range pa.AreaMatches {
			fmt.Fprintf(&b, "  • %s\n", a)
		}
	}
	return b.String()
}

func capped(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
