// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// SectionPattern builds the label+trailing-text heuristic used across the
// pipeline: a label alternation followed by the section body, which runs
// until a blank line, a markdown heading, or end of text.
func SectionPattern(labels string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)(` + labels + `)(.*?)(?:\n\n|\n#|\z)`)
}

// Section returns the body of the first labeled section found, or "".
func Section(re *regexp.Regexp, content string) string {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[2])
}

// bulletPrefix strips leading bullet or numbering tokens from a line.
var bulletPrefix = regexp.MustCompile(`^\s*(?:[•\-\*]|\d+\.)\s*`)

// SplitBullets splits a section body into entries on bullet or numbering
// tokens, one entry per line, dropping empties.
func SplitBullets(body string) []string {
	var items []string
	for _, line := range strings.Split(body, "\n") {
		line = bulletPrefix.ReplaceAllString(line, "")
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, line)
		}
	}
	return items
}

// listSplitRe splits free-text lists on commas, semicolons, or newlines.
var listSplitRe = regexp.MustCompile(`[,;\n]`)

// SplitList splits a comma/semicolon/newline-delimited list, dropping
// empties.
func SplitList(body string) []string {
	var items []string
	for _, it := range listSplitRe.Split(body, -1) {
		if it = strings.TrimSpace(it); it != "" {
			items = append(items, it)
		}
	}
	return items
}

// FindEmail returns the first email address in the content, or "".
func FindEmail(content string) string {
	return emailRe.FindString(content)
}
