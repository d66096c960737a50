// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

// ScholarData is the partial record extracted from a Google Scholar
// profile: citation metrics, interests, and a raw paper list.
type ScholarData struct {
	Citations         int
	HIndex            int
	I10Index          int
	ResearchInterests []string
	Papers            []types.PaperRecord
}

var (
	citationsRe = regexp.MustCompile(`Citations\s+(\d+)`)
	hIndexRe    = regexp.MustCompile(`h-index\s+(\d+)`)
	i10IndexRe  = regexp.MustCompile(`i10-index\s+(\d+)`)
	interestsRe = regexp.MustCompile(`(?s)Interests\s*:\s*(.*?)(?:\n\n|\n[A-Z]|\z)`)
	papersRe    = regexp.MustCompile(`(?s)(Articles|Publications)(.*?)(?:\n\n\n|\z)`)

	citedByRe    = regexp.MustCompile(`Cited by\s+(\d+)`)
	authorYearRe = regexp.MustCompile(`(.*?)\s*(\d{4})`)
	quotedRe     = regexp.MustCompile(`^["']?(.*?)["']?$`)
	yearLineRe   = regexp.MustCompile(`^(19|20)\d{2}\b`)
)

// Scholar parses a scraped Google Scholar profile into structured data.
// Missing metrics stay 0 so downstream arithmetic never sees an absent
// value.
func Scholar(content string) ScholarData {
	data := ScholarData{}

	data.Citations = firstInt(citationsRe, content)
	data.HIndex = firstInt(hIndexRe, content)
	data.I10Index = firstInt(i10IndexRe, content)

	if m := interestsRe.FindStringSubmatch(content); m != nil {
		for _, it := range strings.Split(m[1], ",") {
			if it = strings.TrimSpace(it); it != "" {
				data.ResearchInterests = append(data.ResearchInterests, it)
			}
		}
		data.ResearchInterests = uniqueCapped(data.ResearchInterests, maxInterests)
	}

	if m := papersRe.FindStringSubmatch(content); m != nil {
		for _, entry := range segmentPapers(m[2]) {
			if p, ok := paperFromText(entry); ok {
				data.Papers = append(data.Papers, p)
			}
		}
	}

	return data
}

func firstInt(re *regexp.Regexp, content string) int {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// segmentPapers splits the delimited publications region into entries.
// An entry ends at a blank line or before a line that opens with a 4-digit
// year. This is a known-lossy heuristic: an abstract that itself contains
// a year at the start of a line mis-segments, and that behavior is kept
// for comparability with prior extractions.
func segmentPapers(region string) []string {
	var entries []string
	var cur []string

	flush := func() {
		if len(cur) == 0 {
			return
		}
		entry := strings.TrimSpace(strings.Join(cur, "\n"))
		if entry != "" {
			entries = append(entries, entry)
		}
		cur = cur[:0]
	}

	for _, line := range strings.Split(region, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if yearLineRe.MatchString(trimmed) && len(cur) > 0 {
			flush()
		}
		cur = append(cur, line)
	}
	flush()
	return entries
}

// paperFromText mines one publications entry. The title is the first
// line. The author scan cannot cross a newline, so on a multi-line entry
// it lands on the byline: the text before the first same-line 4-digit
// number becomes the author string and the number the year. A
// "Cited by N" token sets the citation count.
func paperFromText(text string) (types.PaperRecord, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return types.PaperRecord{}, false
	}

	firstLine := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
	title := firstLine
	if m := quotedRe.FindStringSubmatch(firstLine); m != nil {
		title = strings.TrimSpace(m[1])
	}
	if title == "" {
		return types.PaperRecord{}, false
	}

	p := types.PaperRecord{Title: title}
	if m := authorYearRe.FindStringSubmatch(text); m != nil {
		p.Authors = strings.Join(strings.Fields(m[1]), " ")
		p.Year = m[2]
	}
	p.Citations = firstInt(citedByRe, text)
	return p, true
}
