// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate orchestrates the research pipeline: planner,
// classifier, and extractors run across several source kinds and their
// findings merge into one professor profile, which is then enriched paper
// by paper. Every stage is independently best-effort; a stage that finds
// nothing contributes nothing.
package aggregate

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/outreach-engine/internal/extract"
	"github.com/pdiddy/outreach-engine/internal/source"
	"github.com/pdiddy/outreach-engine/internal/webfetch"
	"github.com/pdiddy/outreach-engine/internal/websearch"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// Fetcher retrieves page text, degrading failures to sentinel values.
type Fetcher interface {
	Fetch(ctx context.Context, url string) string
}

// Searcher runs kind-biased web searches, degrading failures to empty
// result lists.
type Searcher interface {
	Search(ctx context.Context, query string, count int, kind source.Kind) []websearch.Result
}

// Aggregator builds professor profiles. Stateless between calls; safe to
// invoke repeatedly or from independent callers.
type Aggregator struct {
	fetcher  Fetcher
	searcher Searcher
	cfg      types.ResearchConfig
	limiter  *rate.Limiter
	log      *zap.Logger
}

// New builds an Aggregator. A zero EnrichRate defaults to 1 request per
// second, a zero MaxPapers to 10.
func New(fetcher Fetcher, searcher Searcher, cfg types.ResearchConfig, log *zap.Logger) *Aggregator {
	if cfg.MaxPapers <= 0 {
		cfg.MaxPapers = 10
	}
	if cfg.EnrichRate <= 0 {
		cfg.EnrichRate = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{
		fetcher:  fetcher,
		searcher: searcher,
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Limit(cfg.EnrichRate), 1),
		log:      log,
	}
}

// Aggregate researches one professor across scholar, institutional, and
// general web sources and returns the merged profile. maxPapers bounds
// both the paper list and the enrichment loop; 0 uses the configured
// default.
func (a *Aggregator) Aggregate(ctx context.Context, name, institution, department string, maxPapers int) *types.ProfessorProfile {
	if maxPapers <= 0 {
		maxPapers = a.cfg.MaxPapers
	}

	profile := &types.ProfessorProfile{
		Name:        name,
		Institution: institution,
		Department:  department,
	}

	a.mergeScholar(ctx, profile)
	if institution != "" {
		a.mergeInstitutional(ctx, profile)
	}
	a.collectWebMentions(ctx, profile)

	if len(profile.Papers) > maxPapers {
		profile.Papers = profile.Papers[:maxPapers]
	}
	a.enrichPapers(ctx, profile.Papers)

	return profile
}

// mergeScholar locates the professor's scholar profile and merges its
// citation metrics, interests, and paper list.
func (a *Aggregator) mergeScholar(ctx context.Context, p *types.ProfessorProfile) {
	query := strings.TrimSpace(p.Name + " " + p.Institution + " Google Scholar")
	results := a.searcher.Search(ctx, query, 5, source.Scholar)

	var profileURL string
	for _, r := range results {
		if strings.Contains(r.Link, "scholar.google.com") {
			profileURL = r.Link
			break
		}
	}
	if profileURL == "" {
		a.log.Info("no scholar profile found", zap.String("name", p.Name))
		return
	}

	content := a.fetcher.Fetch(ctx, profileURL)
	if webfetch.IsFailure(content) {
		return
	}

	data := extract.Scholar(content)
	p.Citations = data.Citations
	p.HIndex = data.HIndex
	p.I10Index = data.I10Index
	p.ResearchInterests = mergeList(p.ResearchInterests, data.ResearchInterests)
	p.Papers = append(p.Papers, data.Papers...)
}

// mergeInstitutional finds the faculty page on the institution's own
// domain and merges bio, lab URL, and recent projects. Fields an earlier
// source already populated are left alone.
func (a *Aggregator) mergeInstitutional(ctx context.Context, p *types.ProfessorProfile) {
	query := strings.TrimSpace(p.Name + " " + p.Institution + " " + p.Department + " profile faculty")
	results := a.searcher.Search(ctx, query, 5, source.Institutional)

	instToken := strings.ReplaceAll(strings.ToLower(p.Institution), " ", "")
	for _, r := range results {
		link := strings.ToLower(r.Link)
		if !strings.Contains(link, instToken) && !strings.Contains(link, "edu") {
			continue
		}

		content := a.fetcher.Fetch(ctx, r.Link)
		if webfetch.IsFailure(content) {
			continue
		}

		info := extract.Profile(content)
		if p.Bio == "" {
			p.Bio = info.Bio
		}
		if p.LabWebsite == "" {
			p.LabWebsite = info.LabWebsite
		}
		if len(info.ResearchInterests) > 0 {
			projects := info.ResearchInterests
			if len(projects) > 5 {
				projects = projects[:5]
			}
			if len(p.RecentProjects) == 0 {
				p.RecentProjects = projects
			}
			p.ResearchInterests = mergeList(p.ResearchInterests, info.ResearchInterests)
		}
		return
	}
}

// webMentionQueries are the auxiliary searches whose hits get bucketed
// into informational link lists.
var webMentionQueries = []string{"recent publications", "research news", "collaborations"}

var paperTokens = []string{"pdf", "article", "paper", "publication"}
var newsTokens = []string{"news", "press", "media"}

// collectWebMentions buckets auxiliary search hits by keyword. The links
// are informational only and never join the typed paper list.
func (a *Aggregator) collectWebMentions(ctx context.Context, p *types.ProfessorProfile) {
	for _, suffix := range webMentionQueries {
		query := strings.TrimSpace(p.Name + " " + p.Institution + " " + suffix)
		for _, r := range a.searcher.Search(ctx, query, 3, source.Academic) {
			link := strings.ToLower(r.Link)
			switch {
			case containsAny(link, paperTokens):
				p.AdditionalPapers = append(p.AdditionalPapers, r.Link)
			case containsAny(link, newsTokens):
				p.NewsMentions = append(p.NewsMentions, r.Link)
			}
		}
	}
}

// enrichPapers fills each paper's abstract and URL through secondary
// searches, paced by the rate limiter to bound the outbound request
// rate. Enrichment failures leave fields empty rather than aborting the
// batch.
func (a *Aggregator) enrichPapers(ctx context.Context, papers []types.PaperRecord) {
	for i := range papers {
		if err := a.limiter.Wait(ctx); err != nil {
			return
		}
		papers[i].Abstract = a.findAbstract(ctx, papers[i])
		papers[i].URL = a.findPaperURL(ctx, papers[i])
	}
}

// findAbstract searches for the paper and scrapes the first
// academic-looking hit that yields a non-empty abstract.
func (a *Aggregator) findAbstract(ctx context.Context, paper types.PaperRecord) string {
	query := strings.TrimSpace(paper.Title + " " + paper.Authors + " abstract")
	for _, r := range a.searcher.Search(ctx, query, 3, source.Academic) {
		if !containsAny(strings.ToLower(r.Link), paperTokens) {
			continue
		}
		content := a.fetcher.Fetch(ctx, r.Link)
		if webfetch.IsFailure(content) {
			continue
		}
		if info := extract.Page(r.Link, content); info.Abstract != "" {
			return info.Abstract
		}
	}
	return ""
}

// findPaperURL searches for the paper's document, preferring a direct
// PDF or an institutional host.
func (a *Aggregator) findPaperURL(ctx context.Context, paper types.PaperRecord) string {
	query := strings.TrimSpace(paper.Title + " " + paper.Authors + " PDF")
	for _, r := range a.searcher.Search(ctx, query, 3, source.Academic) {
		link := strings.ToLower(r.Link)
		if strings.HasSuffix(link, ".pdf") || containsAny(link, []string{"edu", "org", "gov"}) {
			return r.Link
		}
	}
	return ""
}

// mergeList appends new entries preserving existing order, de-duplicating
// case-insensitively and keeping the interest cap.
func mergeList(existing, incoming []string) []string {
	merged := append(append([]string{}, existing...), incoming...)
	seen := make(map[string]bool, len(merged))
	var out []string
	for _, it := range merged {
		key := strings.ToLower(it)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
		if len(out) == 10 {
			break
		}
	}
	return out
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
