// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package align

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/outreach-engine/internal/extract"
)

// techVocabulary is the fixed list of common research terms scanned for
// on the professor side.
var techVocabulary = []string{
	"machine learning", "artificial intelligence", "deep learning", "neural networks",
	"computer vision", "natural language processing", "data science", "optimization",
	"algorithm", "modeling", "simulation", "analysis", "design", "development",
	"research", "experiment", "testing", "validation", "implementation",
}

// programmingLanguages and techSkills are scanned for on the candidate
// side by plain substring, in addition to the explicit skills section.
var programmingLanguages = []string{"Python", "Java", "C++", "JavaScript", "MATLAB", "R", "SQL"}

var techSkills = []string{
	"Machine Learning", "Deep Learning", "Data Analysis", "Statistical Analysis",
	"Research", "Experimental Design", "Optimization", "Simulation",
}

var (
	interestsSectionRe = extract.SectionPattern("Research Interests|Areas of Expertise|Research Focus")
	skillsSectionRe    = extract.SectionPattern("Skills|Technical Skills|Expertise|Competencies")
	expSectionRe       = extract.SectionPattern("Experience|Work Experience|Professional Experience")
	projSectionRe      = extract.SectionPattern("Projects|Research Projects|Academic Projects")
	qualSectionRe      = extract.SectionPattern("Qualifications|Requirements|Eligibility")
	areasSectionRe     = extract.SectionPattern("Research Areas|Areas of Study|Field of Study")

	// capitalizedRe picks up title-cased phrases that tend to be technical
	// terms or proper names.
	capitalizedRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

	// titleLineRe marks a line that starts a new experience or project
	// entry: title-cased words only, no punctuation.
	titleLineRe = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+)*$`)
)

const (
	maxInterests   = 10
	maxKeywords    = 15
	maxSkills      = 15
	maxEntries     = 5
	maxQuals       = 10
	maxAreas       = 5
	entryDescRunes = 100
)

// Interests returns up to 10 research interests mined from the labeled
// section of a research report.
func Interests(text string) []string {
	body := extract.Section(interestsSectionRe, text)
	if body == "" {
		return nil
	}
	return unique(filterLetterless(extract.SplitList(body)), maxInterests)
}

// Keywords mines technical keywords from text: fixed-vocabulary hits
// first, then title-cased phrases, de-duplicated and capped at 15.
func Keywords(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range techVocabulary {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	found = append(found, capitalizedRe.FindAllString(text, -1)...)
	return unique(found, maxKeywords)
}

// Skills mines candidate skills: the labeled skills section plus
// substring scans for programming languages and common technical skills.
func Skills(text string) []string {
	var skills []string
	if body := extract.Section(skillsSectionRe, text); body != "" {
		skills = extract.SplitList(body)
	}
	lower := strings.ToLower(text)
	for _, lang := range programmingLanguages {
		if strings.Contains(lower, strings.ToLower(lang)) {
			skills = append(skills, lang)
		}
	}
	for _, skill := range techSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	return unique(skills, maxSkills)
}

// Experience returns up to 5 "Title: description…" entries from the
// candidate's experience section.
func Experience(text string) []string {
	return sectionEntries(extract.Section(expSectionRe, text))
}

// Projects returns up to 5 "Title: description…" entries from the
// candidate's projects section.
func Projects(text string) []string {
	return sectionEntries(extract.Section(projSectionRe, text))
}

// Qualifications returns up to 10 bullet entries from a rendered
// requirements block.
func Qualifications(positionText string) []string {
	body := extract.Section(qualSectionRe, positionText)
	if body == "" {
		return nil
	}
	items := filterLetterless(extract.SplitBullets(body))
	if len(items) > maxQuals {
		items = items[:maxQuals]
	}
	return items
}

// ResearchAreas returns up to 5 area entries from a rendered requirements
// block.
func ResearchAreas(positionText string) []string {
	body := extract.Section(areasSectionRe, positionText)
	if body == "" {
		return nil
	}
	var areas []string
	for _, it := range filterLetterless(extract.SplitBullets(body)) {
		areas = append(areas, extract.SplitList(it)...)
	}
	if len(areas) > maxAreas {
		areas = areas[:maxAreas]
	}
	return areas
}

// filterLetterless drops entries with no letters at all, such as heading
// decoration that bleeds into a mined section body.
func filterLetterless(items []string) []string {
	var out []string
	for _, it := range items {
		if strings.ContainsFunc(it, unicode.IsLetter) {
			out = append(out, it)
		}
	}
	return out
}

// sectionEntries segments a section body into titled entries: a
// title-cased line starts an entry, following lines are its description,
// truncated to 100 runes.
func sectionEntries(body string) []string {
	var entries []string
	var title string
	var desc []string

	flush := func() {
		if title == "" {
			return
		}
		d := strings.TrimSpace(strings.Join(desc, " "))
		if r := []rune(d); len(r) > entryDescRunes {
			d = string(r[:entryDescRunes])
		}
		entries = append(entries, title+": "+d+"...")
		title, desc = "", nil
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if titleLineRe.MatchString(line) {
			flush()
			title = line
			continue
		}
		if title != "" {
			desc = append(desc, line)
		}
	}
	flush()

	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	return entries
}

// unique de-duplicates case-insensitively, preserving first-seen order,
// and caps the result.
func unique(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		key := strings.ToLower(it)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
		if len(out) == limit {
			break
		}
	}
	return out
}
