// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PositionRequirements holds the structured fields extracted from one PhD
// position posting. Fields the extractor could not find are empty, never
// errors.
type PositionRequirements struct {
	// Title is the position title line (e.g. "PhD Position in Robotics").
	Title string `json:"title" yaml:"title"`

	// Department is the hiring department or faculty.
	Department string `json:"department" yaml:"department"`

	// Institution is the hiring university or institute.
	Institution string `json:"institution" yaml:"institution"`

	// Deadline is the application deadline line, verbatim from the posting.
	Deadline string `json:"deadline" yaml:"deadline"`

	// Qualifications lists required qualifications, one per bullet.
	Qualifications []string `json:"qualifications" yaml:"qualifications"`

	// ResearchAreas lists the advertised research areas.
	ResearchAreas []string `json:"research_areas" yaml:"research_areas"`

	// Contact is the first email address found in the posting.
	Contact string `json:"contact" yaml:"contact"`
}
