// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/outreach-engine/internal/source"
)

// PageInfo is the partial record extracted from one academic page. Fields
// the patterns could not find are empty.
type PageInfo struct {
	Title    string   `yaml:"title"`
	Authors  string   `yaml:"authors"`
	Abstract string   `yaml:"abstract"`
	Year     string   `yaml:"year"`
	DOI      string   `yaml:"doi"`
	Keywords []string `yaml:"keywords"`
}

const (
	doiPattern   = "doi\\.org/[^\\s<>\"{}|\\\\^`\\[\\]]+"
	yearPattern  = `\b(19|20)\d{2}\b`
	emailPattern = `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`
)

// arxivRules targets arXiv abstract pages.
var arxivRules = mustRules([]Rule{
	{Field: "title", Pattern: `(?i)<h1[^>]*class="title[^"]*"[^>]*>(.*?)</h1>`},
	{Field: "authors", Pattern: `(?i)<div[^>]*class="authors[^"]*"[^>]*>(.*?)</div>`},
	{Field: "abstract", Pattern: `(?i)<blockquote[^>]*class="abstract[^"]*"[^>]*>(.*?)</blockquote>`},
	{Field: "year", Pattern: yearPattern, Group: -1},
})

// pubmedRules targets PubMed article pages.
var pubmedRules = mustRules([]Rule{
	{Field: "title", Pattern: `(?i)<h1[^>]*class="heading-title[^"]*"[^>]*>(.*?)</h1>`},
	{Field: "authors", Pattern: `(?i)<div[^>]*class="authors-list[^"]*"[^>]*>(.*?)</div>`},
	{Field: "abstract", Pattern: `(?i)<div[^>]*class="abstract-content[^"]*"[^>]*>(.*?)</div>`},
	{Field: "doi", Pattern: doiPattern, Group: -1},
})

// scholarPageRules targets Google Scholar result markup.
var scholarPageRules = mustRules([]Rule{
	{Field: "title", Pattern: `(?i)<h3[^>]*class="gs_rt"[^>]*>(.*?)</h3>`},
	{Field: "authorsline", Pattern: `(?i)<div[^>]*class="gs_a"[^>]*>(.*?)</div>`},
	{Field: "abstract", Pattern: `(?i)<div[^>]*class="gs_rs"[^>]*>(.*?)</div>`},
})

// generalRules tolerate markup variance across unknown academic sites:
// several candidate pattern families per field, most specific first.
var generalRules = mustRules([]Rule{
	{Field: "title", Pattern: `(?is)<h1[^>]*>(.*?)</h1>`},
	{Field: "title", Pattern: `(?is)<title[^>]*>(.*?)</title>`},
	{Field: "title", Pattern: `(?is)<div[^>]*class="[^"]*title[^"]*"[^>]*>(.*?)</div>`},
	{Field: "title", Pattern: `(?is)<h2[^>]*class="[^"]*title[^"]*"[^>]*>(.*?)</h2>`},

	{Field: "abstract", Pattern: `(?is)<div[^>]*class="[^"]*abstract[^"]*"[^>]*>(.*?)</div>`},
	{Field: "abstract", Pattern: `(?is)<section[^>]*class="[^"]*abstract[^"]*"[^>]*>(.*?)</section>`},
	{Field: "abstract", Pattern: `(?is)<h2[^>]*>Abstract</h2>(.*?)(?:<h2|\z)`},
	{Field: "abstract", Pattern: `(?is)<div[^>]*class="[^"]*summary[^"]*"[^>]*>(.*?)</div>`},
	{Field: "abstract", Pattern: `(?is)Abstract\s*[:\-]?\s*(.*?)(?:\n\n|\n\s*\n|Keywords|Introduction|\z)`},

	{Field: "authors", Pattern: `(?is)<div[^>]*class="[^"]*authors?[^"]*"[^>]*>(.*?)</div>`},
	{Field: "authors", Pattern: `(?is)<span[^>]*class="[^"]*authors?[^"]*"[^>]*>(.*?)</span>`},
	{Field: "authors", Pattern: `(?is)<p[^>]*class="[^"]*authors?[^"]*"[^>]*>(.*?)</p>`},
	{Field: "authors", Pattern: `(?is)Authors?\s*[:\-]?\s*(.*?)(?:\n\n|\n\s*\n|Abstract|\z)`},

	{Field: "year", Pattern: yearPattern, Group: -1},
	{Field: "doi", Pattern: doiPattern, Group: -1},

	{Field: "keywords", Pattern: `(?is)<div[^>]*class="[^"]*keywords?[^"]*"[^>]*>(.*?)</div>`},
	{Field: "keywords", Pattern: `(?i)<meta[^>]*name="keywords"[^>]*content="([^"]*)"`},
	{Field: "keywords", Pattern: `(?is)Keywords?\s*[:\-]?\s*(.*?)(?:\n\n|\n\s*\n|Introduction|\z)`},
})

// listSeparators split comma- or semicolon-delimited field values.
var listSeparators = regexp.MustCompile(`[,;]`)

const maxKeywords = 15

// Page extracts academic fields from raw page content, selecting the rule
// table by the page's origin. Unknown origins fall back to the generic
// chains.
func Page(pageURL, content string) PageInfo {
	var fields map[string]string
	switch {
	case strings.Contains(strings.ToLower(pageURL), "arxiv.org"):
		fields = arxivRules.Apply(content)
	case strings.Contains(strings.ToLower(pageURL), "pubmed.ncbi.nlm.nih.gov"):
		fields = pubmedRules.Apply(content)
	case source.Classify(pageURL) == source.Scholar:
		fields = scholarPageRules.Apply(content)
	default:
		fields = generalRules.Apply(content)
	}

	info := PageInfo{
		Title:    fields["title"],
		Authors:  fields["authors"],
		Abstract: fields["abstract"],
		Year:     fields["year"],
		DOI:      fields["doi"],
	}

	// Scholar result blocks carry authors and year in one byline,
	// "A Author, B Author - Venue, 2019 - publisher".
	if line, ok := fields["authorsline"]; ok {
		info.Authors = strings.TrimSpace(strings.SplitN(line, "-", 2)[0])
		if m := yearRe.FindString(line); m != "" {
			info.Year = m
		}
	}

	if kw, ok := fields["keywords"]; ok {
		for _, k := range listSeparators.Split(kw, -1) {
			if k = strings.TrimSpace(k); k != "" {
				info.Keywords = append(info.Keywords, k)
			}
		}
		info.Keywords = uniqueCapped(info.Keywords, maxKeywords)
	}
	return info
}

var yearRe = regexp.MustCompile(yearPattern)

// uniqueCapped de-duplicates a list preserving first-seen order and caps
// its length.
func uniqueCapped(items []string, cap int) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		key := strings.ToLower(it)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
		if len(out) == cap {
			break
		}
	}
	return out
}
