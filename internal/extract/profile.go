// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// ProfileInfo is the partial record extracted from an institutional
// faculty page.
type ProfileInfo struct {
	Name              string   `yaml:"name"`
	Position          string   `yaml:"position"`
	Department        string   `yaml:"department"`
	ResearchInterests []string `yaml:"research_interests"`
	Bio               string   `yaml:"bio"`
	Contact           string   `yaml:"contact"`
	LabWebsite        string   `yaml:"lab_website"`
}

// institutionalRules targets faculty profile pages. Class-based patterns
// come first; label+trailing-text heuristics catch plain-text renderings
// of the same page.
var institutionalRules = mustRules([]Rule{
	{Field: "name", Pattern: `(?is)<h1[^>]*>(.*?)</h1>`},
	{Field: "name", Pattern: `(?is)<div[^>]*class="[^"]*name[^"]*"[^>]*>(.*?)</div>`},
	{Field: "name", Pattern: `(?is)<span[^>]*class="[^"]*name[^"]*"[^>]*>(.*?)</span>`},

	{Field: "position", Pattern: `(?is)<div[^>]*class="[^"]*position[^"]*"[^>]*>(.*?)</div>`},
	{Field: "position", Pattern: `(?is)<div[^>]*class="[^"]*title[^"]*"[^>]*>(.*?)</div>`},
	{Field: "position", Pattern: `(?is)<span[^>]*class="[^"]*title[^"]*"[^>]*>(.*?)</span>`},

	{Field: "department", Pattern: `(?is)<div[^>]*class="[^"]*department[^"]*"[^>]*>(.*?)</div>`},
	{Field: "department", Pattern: `(?is)Department\s*[:\-]?\s*(.*?)(?:\n\n|\n\s*\n|College|School|\z)`},

	{Field: "interests", Pattern: `(?is)<div[^>]*class="[^"]*interests?[^"]*"[^>]*>(.*?)</div>`},
	{Field: "interests", Pattern: `(?is)<h[2-3][^>]*>Research Interests?</h[2-3]>(.*?)(?:<h[2-3]|\z)`},
	{Field: "interests", Pattern: `(?is)Research Interests?\s*[:\-]?\s*(.*?)(?:\n\n|\n\s*\n|Education|\z)`},

	{Field: "bio", Pattern: `(?is)<div[^>]*class="[^"]*bio[^"]*"[^>]*>(.*?)</div>`},
	{Field: "bio", Pattern: `(?is)<div[^>]*class="[^"]*about[^"]*"[^>]*>(.*?)</div>`},
	{Field: "bio", Pattern: `(?is)<p[^>]*class="[^"]*bio[^"]*"[^>]*>(.*?)</p>`},
})

var (
	emailRe  = regexp.MustCompile(emailPattern)
	labURLRe = regexp.MustCompile("(?i)(https?://[^\\s<>\"{}|\\\\^`\\[\\]]*lab[^\\s<>\"{}|\\\\^`\\[\\]]*)")
)

const maxInterests = 10

// interestSeparators split interest lists on commas, semicolons, or
// newlines.
var interestSeparators = regexp.MustCompile(`[,;\n]`)

// Profile extracts faculty-page fields from raw content.
func Profile(content string) ProfileInfo {
	fields := institutionalRules.Apply(content)

	info := ProfileInfo{
		Name:       fields["name"],
		Position:   fields["position"],
		Department: fields["department"],
		Bio:        fields["bio"],
	}

	if raw, ok := fields["interests"]; ok {
		for _, it := range interestSeparators.Split(raw, -1) {
			if it = strings.TrimSpace(it); it != "" {
				info.ResearchInterests = append(info.ResearchInterests, it)
			}
		}
		info.ResearchInterests = uniqueCapped(info.ResearchInterests, maxInterests)
	}

	// Contact and lab URL scan the whole page, not a labeled region.
	info.Contact = emailRe.FindString(content)
	info.LabWebsite = labURLRe.FindString(content)

	return info
}
