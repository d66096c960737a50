// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose assembles personalized outreach emails from the
// rendered research report, the candidate's background, and optional
// position and alignment blocks. The output is plain text with no markup:
// a subject line, salutation, body sections, and signature. Missing
// inputs degrade to neutral placeholder phrases, never to errors.
package compose

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/outreach-engine/internal/extract"
)

// Request carries everything the assembler may use. Only ProfessorName is
// required; empty fields fall back to placeholders.
type Request struct {
	ProfessorName     string
	ProfessorReport   string
	CandidateText     string
	PositionText      string
	AdditionalContext string
	AlignmentText     string
}

// professorSummary is mined from the rendered research report.
type professorSummary struct {
	name           string
	institution    string
	department     string
	interests      string
	keyPapers      string
	recentProjects string
}

// candidateSummary is mined from the candidate's free-text background.
type candidateSummary struct {
	name       string
	degree     string
	school     string
	skills     string
	experience string
	contact    string
}

var (
	profNameRe = regexp.MustCompile(`Professor:\s*([^\n]*)`)
	profInstRe = regexp.MustCompile(`Institution:\s*([^\n]*)`)
	profDeptRe = regexp.MustCompile(`Department:\s*([^\n]*)`)

	interestsBlockRe = regexp.MustCompile(`(?s)=== RESEARCH INTERESTS ===\n(.*?)(?:\n===|\n\n|\z)`)
	projectsBlockRe  = regexp.MustCompile(`(?s)=== RECENT PROJECTS ===\n(.*?)(?:\n===|\n\n|\z)`)
	paperTitleRe     = regexp.MustCompile(`\d+\.\s*([^\n]*)\n\s*Authors:`)

	// candNameRe expects a dedicated all-caps line near the top of a CV.
	candNameRe   = regexp.MustCompile(`(?m)^([A-Z][A-Z\s]+[A-Z])$`)
	candDegreeRe = regexp.MustCompile(`\b(BSc|MSc|PhD|Bachelor|Master|Doctorate)\b`)
	candSchoolRe = regexp.MustCompile(`[A-Z][a-z]+ (?:University|Institute|College)`)

	skillsSectionRe = extract.SectionPattern("Skills|Technical Skills")
	expSectionRe    = extract.SectionPattern("Experience|Work Experience")

	expTitleLineRe = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+)*$`)
)

// Compose builds the complete email text.
func Compose(req Request) string {
	prof := mineProfessor(req.ProfessorReport)
	cand := mineCandidate(req.CandidateText)

	var b strings.Builder
	b.WriteString(subjectLine(prof, cand, req.PositionText))
	b.WriteString("\n")
	b.WriteString(introduction(req.ProfessorName, prof, cand))
	b.WriteString("\n")
	b.WriteString(researchSection(prof))
	b.WriteString("\n")
	b.WriteString(backgroundSection(cand, req.AlignmentText))
	b.WriteString("\n")
	if req.PositionText != "" {
		b.WriteString(positionSection(req.PositionText, req.AlignmentText))
		b.WriteString("\n")
	}
	b.WriteString(closing(req.AdditionalContext))
	b.WriteString("\n")

	name := cand.name
	if name == "" {
		name = "Your Name"
	}
	fmt.Fprintf(&b, "Best regards,\n%s\n%s\n", name, cand.contact)

	return b.String()
}

func mineProfessor(report string) professorSummary {
	var s professorSummary
	s.name = firstGroup(profNameRe, report)
	s.institution = firstGroup(profInstRe, report)
	s.department = firstGroup(profDeptRe, report)
	s.interests = firstGroup(interestsBlockRe, report)
	if s.interests == "Not specified" {
		s.interests = ""
	}

	var papers []string
	for _, m := range paperTitleRe.FindAllStringSubmatch(report, 3) {
		title := strings.TrimSpace(m[1])
		if r := []rune(title); len(r) > 100 {
			title = string(r[:100])
		}
		papers = append(papers, "• "+title+"...")
	}
	s.keyPapers = strings.Join(papers, "\n")
	s.recentProjects = firstGroup(projectsBlockRe, report)
	return s
}

func mineCandidate(text string) candidateSummary {
	var s candidateSummary
	s.name = strings.TrimSpace(candNameRe.FindString(text))
	s.degree = candDegreeRe.FindString(text)
	s.school = candSchoolRe.FindString(text)
	s.contact = extract.FindEmail(text)

	if body := extract.Section(skillsSectionRe, text); body != "" {
		if r := []rune(body); len(r) > 300 {
			body = string(r[:300])
		}
		s.skills = body
	}

	if body := extract.Section(expSectionRe, text); body != "" {
		s.experience = strings.Join(experienceEntries(body, 2), "\n")
	}
	return s
}

// experienceEntries formats up to n "• Title: desc…" lines from an
// experience section body.
func experienceEntries(body string, n int) []string {
	var entries []string
	var title string
	var desc []string

	flush := func() {
		if title == "" {
			return
		}
		d := strings.TrimSpace(strings.Join(desc, " "))
		if r := []rune(d); len(r) > 100 {
			d = string(r[:100])
		}
		entries = append(entries, "• "+title+": "+d+"...")
		title, desc = "", nil
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if expTitleLineRe.MatchString(line) {
			flush()
			title = line
			continue
		}
		if title != "" {
			desc = append(desc, line)
		}
	}
	flush()

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func subjectLine(prof professorSummary, cand candidateSummary, positionText string) string {
	profName := fallback(prof.name, "Professor")
	candName := fallback(cand.name, "Applicant")
	if positionText != "" {
		return fmt.Sprintf("Subject: PhD Application - %s - %s", profName, candName)
	}
	return fmt.Sprintf("Subject: Research Interest Inquiry - %s - %s", profName, candName)
}

func introduction(professorName string, prof professorSummary, cand candidateSummary) string {
	lastName := professorName
	if i := strings.LastIndex(professorName, " "); i >= 0 {
		lastName = professorName[i+1:]
	}
	return fmt.Sprintf(`Dear Professor %s,
I hope this email finds you well. I am writing to express my strong interest in your research at %s. As a recent %s from %s, I have been following your work in %s with great admiration.`,
		lastName,
		fallback(prof.institution, "your institution"),
		fallback(cand.degree, "graduate"),
		fallback(cand.school, "my university"),
		fallback(prof.interests, "your field"))
}

func researchSection(prof professorSummary) string {
	return fmt.Sprintf(`Your research on %s particularly resonates with my academic background and research interests. I have been especially impressed by your recent work, including:
%s
%s
Based on my analysis of your research profile, I believe there is strong alignment between your work and my expertise.`,
		fallback(prof.interests, "various topics"),
		fallback(prof.keyPapers, "Your notable publications"),
		fallback(prof.recentProjects, "Your current projects"))
}

func backgroundSection(cand candidateSummary, alignmentText string) string {
	return fmt.Sprintf(`My background has prepared me well to contribute to your research group. I have developed strong expertise in:
%s
%s
%s
This combination of skills and experience has given me a solid foundation in the methodologies and approaches that are central to your research.`,
		fallback(cand.skills, "Relevant technical skills"),
		fallback(cand.experience, "Relevant experience"),
		alignmentText)
}

func positionSection(positionText, alignmentText string) string {
	return fmt.Sprintf(`I am particularly interested in the PhD position you have advertised, and I am confident that I meet the key requirements:
%s
%s
I am excited about the opportunity to contribute to your ongoing research projects and believe that my skills and enthusiasm would make me a valuable addition to your team.`,
		positionText, alignmentText)
}

func closing(additionalContext string) string {
	return fmt.Sprintf(`I would be grateful for the opportunity to discuss how my background and research interests align with your work. Please let me know if you would be available for a brief conversation or if you require any additional information.
%s
Thank you for your time and consideration. I look forward to hearing from you.`,
		additionalContext)
}

func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func fallback(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
