// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package webfetch retrieves raw page text for the pipeline. It hides
// transport details: an optional high-fidelity rendering service is tried
// first, then a direct HTTP fetch with rotating browser identity and a
// bounded retry budget. Failures are never raised to the caller; they
// degrade to a sentinel text value beginning with FailurePrefix.
package webfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

// FailurePrefix marks a sentinel failure value returned in place of page
// text. Downstream stages must treat any value with this prefix as "no
// content", not crash.
const FailurePrefix = "Failed to scrape"

// Failure builds the sentinel failure value for a URL.
func Failure(pageURL string, err error) string {
	return fmt.Sprintf("%s %s: %v", FailurePrefix, pageURL, err)
}

// IsFailure reports whether a fetched value is a sentinel failure.
func IsFailure(text string) bool {
	return strings.HasPrefix(text, FailurePrefix)
}

// Fetcher retrieves page text. Safe for use by independent callers; it
// keeps no per-call state.
type Fetcher struct {
	cfg    types.FetchConfig
	client *http.Client
	log    *zap.Logger
}

// NewFetcher builds a Fetcher from config. A zero Timeout defaults to 30s.
func NewFetcher(cfg types.FetchConfig, log *zap.Logger) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// Fetch returns normalized text for a URL. It never returns an error: any
// failure yields a sentinel value recognizable via IsFailure.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) string {
	if f.cfg.ReaderEndpoint != "" {
		if text, err := f.readerFetch(ctx, pageURL); err == nil {
			return text
		} else {
			f.log.Warn("reader service failed, falling back to direct fetch",
				zap.String("url", pageURL), zap.Error(err))
		}
	}

	text, err := f.directFetch(ctx, pageURL)
	if err != nil {
		f.log.Warn("direct fetch failed", zap.String("url", pageURL), zap.Error(err))
		return Failure(pageURL, err)
	}
	return text
}

// readerResponse covers the JSON shapes a Firecrawl-compatible scrape
// endpoint returns: markdown nested under data, or at the top level.
type readerResponse struct {
	Data struct {
		Markdown string `json:"markdown"`
	} `json:"data"`
	Markdown string `json:"markdown"`
}

// readerFetch asks the rendering service for the page as markdown.
func (f *Fetcher) readerFetch(ctx context.Context, pageURL string) (string, error) {
	reqURL := f.cfg.ReaderEndpoint + "?url=" + url.QueryEscape(pageURL) + "&onlyMainContent=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	if f.cfg.ReaderAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.cfg.ReaderAPIKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reader service returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var rr readerResponse
	if err := json.Unmarshal(body, &rr); err == nil {
		if rr.Data.Markdown != "" {
			return rr.Data.Markdown, nil
		}
		if rr.Markdown != "" {
			return rr.Markdown, nil
		}
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", fmt.Errorf("reader service returned empty body")
	}
	return text, nil
}

// directFetch retrieves and normalizes the page over plain HTTP.
func (f *Fetcher) directFetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	setBrowserHeaders(req.Header)

	resp, err := DoWithRetry(ctx, f.client, req, f.cfg.MaxAttempts)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing page: %w", err)
	}
	return ExtractText(doc), nil
}

// contentSelectors are tried in order; the first non-empty region wins.
var contentSelectors = []string{"main", "article", "div.content"}

// ExtractText strips script and style content, prefers a main-content
// region over the full body, and collapses whitespace into normalized
// line-based text.
func ExtractText(doc *goquery.Document) string {
	doc.Find("script, style").Remove()

	var region *goquery.Selection
	for _, sel := range contentSelectors {
		if s := doc.Find(sel); s.Length() > 0 {
			region = s.First()
			break
		}
	}
	if region == nil {
		region = doc.Find("body")
	}

	text := region.Text()
	if text == "" {
		text = doc.Text()
	}
	return normalize(text)
}

// normalize collapses whitespace: lines are trimmed, split on double-space
// runs, and rejoined with single newlines, dropping empty chunks.
func normalize(text string) string {
	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			if p := strings.TrimSpace(phrase); p != "" {
				chunks = append(chunks, p)
			}
		}
	}
	return strings.Join(chunks, "\n")
}
