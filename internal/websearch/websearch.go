// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package websearch plans and executes source-type-biased web searches.
// It issues one search-engine request per call, parses the result page,
// normalizes redirect-wrapped links, and tags each result with its source
// kind. Every failure mode degrades to an empty result list: callers must
// treat no results as "no evidence found", never as an error.
package websearch

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/pdiddy/outreach-engine/internal/source"
	"github.com/pdiddy/outreach-engine/internal/webfetch"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// searchBase is the search-engine endpoint. Declared as a var so tests
// can substitute an httptest server.
var searchBase = "https://www.google.com/search"

// Result is one search hit, tagged with the classifier's source kind.
type Result struct {
	Title      string      `json:"title"`
	Link       string      `json:"link"`
	Snippet    string      `json:"snippet"`
	SourceKind source.Kind `json:"source_kind"`
}

// Searcher executes planned queries. Stateless; safe for reuse across
// independent callers.
type Searcher struct {
	cfg    types.SearchConfig
	client *http.Client
	log    *zap.Logger
}

// NewSearcher builds a Searcher from config. A zero Timeout defaults to
// 30s, a zero ResultCount to 10.
func NewSearcher(cfg types.SearchConfig, log *zap.Logger) *Searcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.ResultCount <= 0 {
		cfg.ResultCount = 10
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Searcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// augmentQuery biases the raw query toward a source kind.
func augmentQuery(query string, kind source.Kind) string {
	switch kind {
	case source.Scholar:
		return query + " site:scholar.google.com"
	case source.Academic:
		return query + " (pdf OR article OR paper OR publication OR research)"
	case source.Institutional:
		return query + " (university OR institute OR college OR faculty)"
	}
	return query
}

// Search runs one kind-biased query and returns up to count ordered
// results. An empty slice, not an error, comes back on any network or
// parse failure.
func (s *Searcher) Search(ctx context.Context, query string, count int, kind source.Kind) []Result {
	if count <= 0 {
		count = s.cfg.ResultCount
	}

	q := url.Values{}
	q.Set("q", augmentQuery(query, kind))
	q.Set("num", strconv.Itoa(count))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchBase+"?"+q.Encode(), nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", webfetch.RandomUserAgent())
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("web search request failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warn("web search returned non-OK status",
			zap.String("query", query), zap.Int("status", resp.StatusCode))
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		s.log.Warn("parsing search results failed", zap.Error(err))
		return nil
	}

	return parseResults(doc, count)
}

// parseResults walks the engine's result blocks: div.g containers with an
// h3 title, an anchor, and a div.VwiC3b snippet.
func parseResults(doc *goquery.Document, count int) []Result {
	var results []Result
	doc.Find("div.g").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Find("h3").First().Text())
		link, _ := sel.Find("a").First().Attr("href")
		snippet := strings.TrimSpace(sel.Find("div.VwiC3b").First().Text())

		link = unwrapRedirect(link)
		if title == "" || !strings.HasPrefix(link, "http") {
			return true
		}

		results = append(results, Result{
			Title:      title,
			Link:       link,
			Snippet:    snippet,
			SourceKind: source.Classify(link),
		})
		return len(results) < count
	})
	return results
}

// unwrapRedirect normalizes engine redirect links ("/url?q=<target>&sa=U…")
// to their target URL.
func unwrapRedirect(link string) string {
	if !strings.HasPrefix(link, "/url?q=") {
		return link
	}
	link = strings.TrimPrefix(link, "/url?q=")
	if i := strings.Index(link, "&sa=U"); i >= 0 {
		link = link[:i]
	}
	if unescaped, err := url.QueryUnescape(link); err == nil {
		link = unescaped
	}
	return link
}
