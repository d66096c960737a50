// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source maps URLs to coarse source kinds. The kind selects which
// extraction strategy downstream stages apply to a page.
package source

import "strings"

// Kind is the coarse category of a URL's origin.
type Kind string

const (
	Scholar       Kind = "scholar"
	Academic      Kind = "academic"
	Institutional Kind = "institutional"
	PDF           Kind = "pdf"
	Publication   Kind = "publication"
	General       Kind = "general"
)

// academicDomains are preprint, medical, and engineering-society hosts.
var academicDomains = []string{"arxiv.org", "pubmed.ncbi.nlm.nih.gov", "ieee.org", "acm.org"}

// institutionalDomains mark university-operated sites.
var institutionalDomains = []string{".edu", ".ac.uk", ".edu.au"}

// publicationTokens suggest a journal or article page.
var publicationTokens = []string{"journal", "paper", "article", "publication"}

// Classify returns the source kind for a URL. Matching is pure substring
// containment over the lowercased URL; rules are checked in priority order
// and the first match wins.
func Classify(url string) Kind {
	u := strings.ToLower(url)

	if strings.Contains(u, "scholar.google.com") {
		return Scholar
	}
	for _, d := range academicDomains {
		if strings.Contains(u, d) {
			return Academic
		}
	}
	for _, d := range institutionalDomains {
		if strings.Contains(u, d) {
			return Institutional
		}
	}
	if strings.Contains(u, ".pdf") {
		return PDF
	}
	for _, t := range publicationTokens {
		if strings.Contains(u, t) {
			return Publication
		}
	}
	return General
}
