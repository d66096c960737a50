// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package align computes heuristic overlap scores between a professor's
// research profile and a candidate's background. All matching is
// case-insensitive bidirectional substring containment; a deliberate
// precision/recall trade-off favoring simplicity over semantic accuracy.
package align

import (
	"strings"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

// Score computes the full alignment report from the rendered professor
// report, the candidate's background text, and an optional rendered
// position-requirements block. An empty positionText leaves the position
// sub-score nil.
func Score(professorText, candidateText, positionText string) types.AlignmentReport {
	interests := Interests(professorText)
	keywords := Keywords(professorText)
	skills := Skills(candidateText)
	experience := Experience(candidateText)
	projects := Projects(candidateText)

	report := types.AlignmentReport{
		Interests:  scoreInterests(interests, skills, experience),
		Skills:     scoreSkills(keywords, skills),
		Experience: scoreHits(keywords, experience),
		Projects:   scoreHits(keywords, projects),
	}
	if positionText != "" {
		pos := scorePosition(Qualifications(positionText), ResearchAreas(positionText), skills, experience)
		report.Position = &pos
	}
	return report
}

// overlaps reports the bidirectional substring test used by every
// sub-score.
func overlaps(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// scoreInterests awards each interest up to two points: one for its first
// matching skill, one for any matching experience entry.
func scoreInterests(interests, skills, experience []string) types.InterestAlignment {
	var points int
	var details []string

	for _, interest := range interests {
		for _, skill := range skills {
			if overlaps(interest, skill) {
				points++
				details = append(details,
					"Research interest '"+interest+"' aligns with your skill '"+skill+"'")
				break
			}
		}
		for _, exp := range experience {
			if strings.Contains(strings.ToLower(exp), strings.ToLower(interest)) {
				points++
				details = append(details,
					"Research interest '"+interest+"' aligns with your experience")
				break
			}
		}
	}

	var percent float64
	if possible := len(interests) * 2; possible > 0 {
		percent = float64(points) / float64(possible) * 100
	}
	return types.InterestAlignment{Percent: percent, Details: details}
}

// scoreSkills pairs each professor keyword with its first matching
// candidate skill; unmatched keywords become gaps.
func scoreSkills(keywords, skills []string) types.SkillsAlignment {
	out := types.SkillsAlignment{Total: len(keywords)}
	for _, kw := range keywords {
		matched := false
		for _, skill := range skills {
			if overlaps(kw, skill) {
				out.Matched = append(out.Matched, kw+" ↔ "+skill)
				matched = true
				break
			}
		}
		if !matched {
			out.Gaps = append(out.Gaps, kw)
		}
	}
	return out
}

// scoreHits records every keyword occurrence across the entry list.
func scoreHits(keywords, entries []string) types.CountAlignment {
	var out types.CountAlignment
	for _, kw := range keywords {
		lkw := strings.ToLower(kw)
		for _, entry := range entries {
			if strings.Contains(strings.ToLower(entry), lkw) {
				out.Matches = append(out.Matches, kw+": "+entry)
			}
		}
	}
	return out
}

// scorePosition marks each qualification met when any candidate skill or
// experience entry satisfies the substring test, and collects
// research-area overlaps against skills.
func scorePosition(quals, areas, skills, experience []string) types.PositionAlignment {
	out := types.PositionAlignment{Total: len(quals)}

	for _, qual := range quals {
		met := false
		for _, skill := range skills {
			if overlaps(qual, skill) {
				met = true
				break
			}
		}
		if !met {
			for _, exp := range experience {
				if strings.Contains(strings.ToLower(exp), strings.ToLower(qual)) {
					met = true
					break
				}
			}
		}
		if met {
			out.Met = append(out.Met, qual)
		} else {
			out.Unmet = append(out.Unmet, qual)
		}
	}

	for _, area := range areas {
		for _, skill := range skills {
			if overlaps(area, skill) {
				out.AreaMatches = append(out.AreaMatches, area+" ↔ "+skill)
				break
			}
		}
	}
	return out
}
