// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// InterestAlignment scores professor research interests against candidate
// skills and experience. Each interest contributes at most two points: one
// for a skill match and one for an experience match.
type InterestAlignment struct {
	// Percent is points / (interests * 2) * 100, or 0 when there are no
	// interests.
	Percent float64 `json:"percent" yaml:"percent"`

	// Details lists human-readable match lines in discovery order.
	Details []string `json:"details" yaml:"details"`
}

// SkillsAlignment matches professor keywords against candidate skills.
type SkillsAlignment struct {
	// Matched lists "keyword ↔ skill" pairs.
	Matched []string `json:"matched" yaml:"matched"`

	// Gaps lists professor keywords with no matching candidate skill.
	Gaps []string `json:"gaps" yaml:"gaps"`

	// Total is the number of professor keywords considered.
	Total int `json:"total" yaml:"total"`
}

// CountAlignment records keyword hits against a candidate list (experience
// or projects). It carries a count and match lines, no percentage.
type CountAlignment struct {
	// Matches lists "keyword: entry" hit lines.
	Matches []string `json:"matches" yaml:"matches"`
}

// PositionAlignment scores candidate skills and experience against a
// position's required qualifications and research areas.
type PositionAlignment struct {
	// Met lists qualifications satisfied by at least one candidate skill
	// or experience entry.
	Met []string `json:"met" yaml:"met"`

	// Unmet lists qualifications with no satisfying candidate entry.
	Unmet []string `json:"unmet" yaml:"unmet"`

	// AreaMatches lists "area ↔ skill" research-area overlap pairs.
	AreaMatches []string `json:"area_matches" yaml:"area_matches"`

	// Total is the number of qualifications considered. A zero total
	// renders as "0/0 met", never an error.
	Total int `json:"total" yaml:"total"`
}

// AlignmentReport is the full set of heuristic overlap scores between a
// professor profile and a candidate background. It is a stateless value
// recomputed on every call.
type AlignmentReport struct {
	Interests  InterestAlignment `json:"interests" yaml:"interests"`
	Skills     SkillsAlignment   `json:"skills" yaml:"skills"`
	Experience CountAlignment    `json:"experience" yaml:"experience"`
	Projects   CountAlignment    `json:"projects" yaml:"projects"`

	// Position is nil when no position requirements were supplied.
	Position *PositionAlignment `json:"position,omitempty" yaml:"position,omitempty"`
}
