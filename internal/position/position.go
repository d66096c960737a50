// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package position extracts PhD position requirements from job-posting
// pages and renders them as a sectioned plain-text block.
package position

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/outreach-engine/internal/extract"
	"github.com/pdiddy/outreach-engine/internal/webfetch"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// Fetcher retrieves page text, degrading failures to sentinel values.
type Fetcher interface {
	Fetch(ctx context.Context, url string) string
}

// Extractor turns job-posting URLs into requirements records.
type Extractor struct {
	fetcher Fetcher
	log     *zap.Logger
}

func New(fetcher Fetcher, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{fetcher: fetcher, log: log}
}

// Headline fields use a label-plus-trailing-text heuristic: the field
// value is the label and everything after it up to a line break, pipe, or
// hyphen separator.
var (
	titleRe    = regexp.MustCompile(`(?i)(?:PhD Position|PhD Student|Doctoral Position|Graduate Assistant)[^|\n-]*`)
	deptRe     = regexp.MustCompile(`(?i)(?:Department|Faculty|School)[^|\n-]*`)
	instRe     = regexp.MustCompile(`(?i)(?:University|Institute|College)[^|\n-]*`)
	deadlineRe = regexp.MustCompile(`(?i)(?:Deadline|Application Deadline|Closing Date)[^|\n-]*`)

	qualSectionRe = extract.SectionPattern("Qualifications|Requirements|Eligibility")
	areaSectionRe = extract.SectionPattern("Research Areas|Areas of Study|Field of Study")
)

// Extract fetches the posting and parses its requirements. A scrape
// failure returns the zero record and an error carrying the fetch
// sentinel text.
func (e *Extractor) Extract(ctx context.Context, url string) (types.PositionRequirements, error) {
	e.log.Info("extracting position requirements", zap.String("url", url))

	content := e.fetcher.Fetch(ctx, url)
	if webfetch.IsFailure(content) {
		return types.PositionRequirements{}, fmt.Errorf("position URL not scrapable: %s", content)
	}
	return Parse(content), nil
}

// Report runs the full operation: fetch, parse, render. A scrape failure
// renders as an explicit failure line instead of an empty block.
func (e *Extractor) Report(ctx context.Context, url string) string {
	content := e.fetcher.Fetch(ctx, url)
	if webfetch.IsFailure(content) {
		return "Failed to scrape position URL: " + content
	}
	return Render(Parse(content))
}

// Parse extracts a requirements record from raw posting text. Fields the
// patterns cannot find stay empty.
func Parse(content string) types.PositionRequirements {
	req := types.PositionRequirements{
		Title:       strings.TrimSpace(titleRe.FindString(content)),
		Department:  strings.TrimSpace(deptRe.FindString(content)),
		Institution: strings.TrimSpace(instRe.FindString(content)),
		Deadline:    strings.TrimSpace(deadlineRe.FindString(content)),
		Contact:     extract.FindEmail(content),
	}

	if body := extract.Section(qualSectionRe, content); body != "" {
		req.Qualifications = extract.SplitBullets(body)
	}
	if body := extract.Section(areaSectionRe, content); body != "" {
		for _, area := range strings.Split(body, ",") {
			if area = strings.TrimSpace(area); area != "" {
				req.ResearchAreas = append(req.ResearchAreas, area)
			}
		}
	}
	return req
}

// Render formats a requirements record as the sectioned block consumed by
// the alignment and email stages.
func Render(req types.PositionRequirements) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== PhD POSITION REQUIREMENTS ===\n")
	fmt.Fprintf(&b, "Position Title: %s\n", req.Title)
	fmt.Fprintf(&b, "Department: %s\n", req.Department)
	fmt.Fprintf(&b, "Institution: %s\n", req.Institution)
	fmt.Fprintf(&b, "Application Deadline: %s\n", req.Deadline)
	fmt.Fprintf(&b, "=== REQUIRED QUALIFICATIONS ===\n")
	for _, qual := range req.Qualifications {
		fmt.Fprintf(&b, "• %s\n", qual)
	}

	if len(req.ResearchAreas) > 0 {
		fmt.Fprintf(&b, "\n=== RESEARCH AREAS ===\n")
		for _, area := range req.ResearchAreas {
			fmt.Fprintf(&b, "• %s\n", area)
		}
	}

	if req.Contact != "" {
		fmt.Fprintf(&b, "\n=== CONTACT INFORMATION ===\n%s\n", req.Contact)
	}

	return b.String()
}
