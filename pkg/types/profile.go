// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the outreach-engine
// pipeline: professor profiles, paper records, position requirements,
// alignment reports, and stage configuration.
package types

// PaperRecord describes one publication attributed to a professor. Identity
// is positional (first-seen order); exact duplicates across merged sources
// are possible and accepted.
type PaperRecord struct {
	// Title is the publication title.
	Title string `json:"title" yaml:"title"`

	// Authors is the raw author string as it appeared in the source.
	Authors string `json:"authors" yaml:"authors"`

	// Year is a 4-digit publication year, or empty when unknown.
	Year string `json:"year" yaml:"year"`

	// Citations is the citation count; 0 when unknown.
	Citations int `json:"citations" yaml:"citations"`

	// Abstract is filled during enrichment and may be empty.
	Abstract string `json:"abstract" yaml:"abstract"`

	// URL points at the paper itself, filled during enrichment.
	URL string `json:"url" yaml:"url"`
}

// ProfessorProfile aggregates everything the pipeline learned about one
// professor. A profile is created fresh per aggregation call and mutated
// additively: a field populated by an earlier, higher-priority source is
// never overwritten by a later one.
type ProfessorProfile struct {
	// Name is the professor's full name as given by the caller.
	Name string `json:"name" yaml:"name"`

	// Institution is the professor's institution, when known.
	Institution string `json:"institution" yaml:"institution"`

	// Department is the professor's department, when known.
	Department string `json:"department" yaml:"department"`

	// Citations is the total citation count. Defaults to 0, never absent.
	Citations int `json:"citations" yaml:"citations"`

	// HIndex is the professor's h-index. Defaults to 0.
	HIndex int `json:"h_index" yaml:"h_index"`

	// I10Index is the professor's i10-index. Defaults to 0.
	I10Index int `json:"i10_index" yaml:"i10_index"`

	// ResearchInterests is an ordered, de-duplicated interest list, capped
	// at extraction time.
	ResearchInterests []string `json:"research_interests" yaml:"research_interests"`

	// Papers lists publications in first-seen order.
	Papers []PaperRecord `json:"papers" yaml:"papers"`

	// Bio is the institutional biography text, when found.
	Bio string `json:"bio,omitempty" yaml:"bio,omitempty"`

	// LabWebsite is the professor's lab URL, when found.
	LabWebsite string `json:"lab_website,omitempty" yaml:"lab_website,omitempty"`

	// RecentProjects lists current research projects from the
	// institutional profile.
	RecentProjects []string `json:"recent_projects,omitempty" yaml:"recent_projects,omitempty"`

	// AdditionalPapers holds publication-like links found by auxiliary
	// searches. Informational only; never merged into Papers.
	AdditionalPapers []string `json:"additional_papers,omitempty" yaml:"additional_papers,omitempty"`

	// NewsMentions holds news and press links found by auxiliary searches.
	NewsMentions []string `json:"news_mentions,omitempty" yaml:"news_mentions,omitempty"`
}
