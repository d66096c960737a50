// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/outreach-engine/internal/source"
	"github.com/pdiddy/outreach-engine/internal/webfetch"
	"github.com/pdiddy/outreach-engine/internal/websearch"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

type searchFunc func(ctx context.Context, query string, count int, kind source.Kind) []websearch.Result

func (f searchFunc) Search(ctx context.Context, query string, count int, kind source.Kind) []websearch.Result {
	return f(ctx, query, count, kind)
}

type fetchFunc func(ctx context.Context, url string) string

func (f fetchFunc) Fetch(ctx context.Context, url string) string { return f(ctx, url) }

const scholarProfilePage = `Jane Doe
Citations 12345
h-index 42
i10-index 88
Interests: machine learning, optimization

Articles
Learning to Learn
J Doe, A Smith - NeurIPS, 2019
Cited by 250

Fast Solvers
J Doe - SIAM, 2017
Cited by 90


footer`

const facultyPage = `<h1>Dr. Jane Doe</h1>
<div class="interests">robotics, control theory, machine learning</div>
<div class="bio">Jane leads the Autonomy Lab.</div>
Lab: https://autonomylab.mit.edu`

// fastCfg keeps the enrichment pacer out of the way of test runtime.
var fastCfg = types.ResearchConfig{MaxPapers: 10, EnrichRate: 10000}

func TestAggregateMergesScholarAndInstitutional(t *testing.T) {
	search := searchFunc(func(_ context.Context, query string, _ int, _ source.Kind) []websearch.Result {
		switch {
		case strings.Contains(query, "Google Scholar"):
			return []websearch.Result{
				{Title: "not it", Link: "https://example.com/other"},
				{Title: "Jane Doe", Link: "https://scholar.google.com/citations?user=X"},
			}
		case strings.Contains(query, "profile faculty"):
			return []websearch.Result{
				{Title: "unrelated", Link: "https://randomblog.net/jane"},
				{Title: "Jane Doe | MIT", Link: "https://mit.edu/~jane"},
			}
		}
		return nil
	})
	fetch := fetchFunc(func(_ context.Context, url string) string {
		switch {
		case strings.Contains(url, "scholar.google.com"):
			return scholarProfilePage
		case strings.Contains(url, "mit.edu"):
			return facultyPage
		}
		return webfetch.Failure(url, context.Canceled)
	})

	a := New(fetch, search, fastCfg, nil)
	p := a.Aggregate(context.Background(), "Jane Doe", "MIT", "EECS", 0)

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, 12345, p.Citations)
	assert.Equal(t, 42, p.HIndex)
	assert.Equal(t, 88, p.I10Index)

	require.Len(t, p.Papers, 2)
	assert.Equal(t, "Learning to Learn", p.Papers[0].Title)
	assert.Equal(t, "J Doe, A Smith - NeurIPS,", p.Papers[0].Authors)

	assert.Equal(t, "Jane leads the Autonomy Lab.", p.Bio)
	assert.Equal(t, "https://autonomylab.mit.edu", p.LabWebsite)
	assert.Equal(t, []string{"robotics", "control theory", "machine learning"}, p.RecentProjects)

	// Scholar interests come first, faculty-page interests merge after
	// without duplicating "machine learning".
	assert.Equal(t, []string{"machine learning", "optimization", "robotics", "control theory"},
		p.ResearchInterests)
}

func TestAggregatePaperCap(t *testing.T) {
	search := searchFunc(func(_ context.Context, query string, _ int, _ source.Kind) []websearch.Result {
		if strings.Contains(query, "Google Scholar") {
			return []websearch.Result{{Link: "https://scholar.google.com/citations?user=X"}}
		}
		return nil
	})
	fetch := fetchFunc(func(_ context.Context, _ string) string { return scholarProfilePage })

	a := New(fetch, search, fastCfg, nil)
	p := a.Aggregate(context.Background(), "Jane Doe", "", "", 1)
	assert.Len(t, p.Papers, 1)
}

func TestWebMentionBuckets(t *testing.T) {
	search := searchFunc(func(_ context.Context, query string, _ int, _ source.Kind) []websearch.Result {
		if strings.Contains(query, "research news") {
			return []websearch.Result{
				{Link: "https://journal.example.org/article/123"},
				{Link: "https://mit.edu/news/jane-wins-award"},
				{Link: "https://example.com/unrelated"},
			}
		}
		return nil
	})
	fetch := fetchFunc(func(_ context.Context, url string) string {
		return webfetch.Failure(url, context.Canceled)
	})

	a := New(fetch, search, fastCfg, nil)
	p := a.Aggregate(context.Background(), "Jane Doe", "MIT", "", 0)

	assert.Equal(t, []string{"https://journal.example.org/article/123"}, p.AdditionalPapers)
	assert.Equal(t, []string{"https://mit.edu/news/jane-wins-award"}, p.NewsMentions)
	assert.Empty(t, p.Papers, "bucketed links never join the paper list")
}

func TestEnrichmentFillsAbstractAndURL(t *testing.T) {
	const abstractPage = `<div class="abstract">We meta-learn optimizers across tasks.</div>`

	search := searchFunc(func(_ context.Context, query string, _ int, _ source.Kind) []websearch.Result {
		switch {
		case strings.Contains(query, "Google Scholar"):
			return []websearch.Result{{Link: "https://scholar.google.com/citations?user=X"}}
		case strings.HasSuffix(query, " abstract"):
			return []websearch.Result{{Link: "https://journal.example.org/article/99"}}
		case strings.HasSuffix(query, " PDF"):
			return []websearch.Result{
				{Link: "https://tracker.example.net/x"},
				{Link: "https://mit.edu/papers/l2l.pdf"},
			}
		}
		return nil
	})
	fetch := fetchFunc(func(_ context.Context, url string) string {
		switch {
		case strings.Contains(url, "scholar.google.com"):
			return scholarProfilePage
		case strings.Contains(url, "article"):
			return abstractPage
		}
		return webfetch.Failure(url, context.Canceled)
	})

	a := New(fetch, search, fastCfg, nil)
	p := a.Aggregate(context.Background(), "Jane Doe", "", "", 2)

	require.Len(t, p.Papers, 2)
	assert.Equal(t, "We meta-learn optimizers across tasks.", p.Papers[0].Abstract)
	assert.Equal(t, "https://mit.edu/papers/l2l.pdf", p.Papers[0].URL)
}

func TestAggregateAllSourcesFailing(t *testing.T) {
	search := searchFunc(func(_ context.Context, _ string, _ int, _ source.Kind) []websearch.Result {
		return nil
	})
	fetch := fetchFunc(func(_ context.Context, url string) string {
		return webfetch.Failure(url, context.Canceled)
	})

	a := New(fetch, search, fastCfg, nil)
	p := a.Aggregate(context.Background(), "Jane Doe", "MIT", "EECS", 0)

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "MIT", p.Institution)
	assert.Zero(t, p.Citations)
	assert.Empty(t, p.Papers)
}

func TestRenderReport(t *testing.T) {
	long := strings.Repeat("x", 400)
	p := &types.ProfessorProfile{
		Name:              "Jane Doe",
		Institution:       "MIT",
		Department:        "EECS",
		Citations:         12345,
		HIndex:            42,
		I10Index:          88,
		ResearchInterests: []string{"machine learning", "optimization"},
		Papers: []types.PaperRecord{
			{Title: "Learning to Learn", Authors: "J Doe", Year: "2019", Citations: 250, Abstract: long, URL: "https://mit.edu/l2l.pdf"},
		},
		RecentProjects: []string{"Autonomy Lab testbed"},
		LabWebsite:     "https://autonomylab.mit.edu",
	}

	report := Render(p)
	assert.Contains(t, report, "=== COMPREHENSIVE RESEARCH PROFILE ===")
	assert.Contains(t, report, "Professor: Jane Doe")
	assert.Contains(t, report, "Total Citations: 12345")
	assert.Contains(t, report, "machine learning, optimization")
	assert.Contains(t, report, "1. Learning to Learn")
	assert.Contains(t, report, "   Abstract: "+strings.Repeat("x", 300)+"...")
	assert.NotContains(t, report, strings.Repeat("x", 301))
	assert.Contains(t, report, "• Autonomy Lab testbed")
	assert.Contains(t, report, "=== LAB WEBSITE ===\nhttps://autonomylab.mit.edu")
}

func TestRenderReportEmptySections(t *testing.T) {
	report := Render(&types.ProfessorProfile{Name: "Jane Doe"})
	assert.Contains(t, report, "Not specified")
	assert.NotContains(t, report, "RECENT PROJECTS")
	assert.NotContains(t, report, "LAB WEBSITE")
}

func TestRenderCapsPublications(t *testing.T) {
	p := &types.ProfessorProfile{Name: "J"}
	for i := 0; i < 8; i++ {
		p.Papers = append(p.Papers, types.PaperRecord{Title: "T"})
	}
	report := Render(p)
	assert.Contains(t, report, "5. T")
	assert.NotContains(t, report, "6. T")
}
