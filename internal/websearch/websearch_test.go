// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/outreach-engine/internal/source"
	"github.com/pdiddy/outreach-engine/internal/webfetch"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// withSearchBase points the package at a test server for one test.
func withSearchBase(t *testing.T, base string) {
	t.Helper()
	old := searchBase
	searchBase = base
	t.Cleanup(func() { searchBase = old })
}

const resultsPage = `<html><body>
<div class="g">
  <a href="/url?q=https://scholar.google.com/citations%3Fuser%3DX&sa=U&ved=1"><h3>Jane Doe - Google Scholar</h3></a>
  <div class="VwiC3b">Cited by 12345</div>
</div>
<div class="g">
  <a href="https://mit.edu/~jane"><h3>Jane Doe | MIT</h3></a>
  <div class="VwiC3b">Faculty page</div>
</div>
<div class="g">
  <a href="/relative/only"><h3>Broken</h3></a>
</div>
</body></html>`

func TestSearchParsesAndTagsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("q"), "site:scholar.google.com")
		w.Write([]byte(resultsPage))
	}))
	defer srv.Close()
	withSearchBase(t, srv.URL)

	s := NewSearcher(types.SearchConfig{}, zap.NewNop())
	results := s.Search(context.Background(), "Jane Doe", 10, source.Scholar)

	require.Len(t, results, 2, "non-http links must be dropped")
	assert.Equal(t, "Jane Doe - Google Scholar", results[0].Title)
	assert.Equal(t, "https://scholar.google.com/citations?user=X", results[0].Link,
		"redirect wrapper must be unwrapped and unescaped")
	assert.Equal(t, source.Scholar, results[0].SourceKind)
	assert.Equal(t, source.Institutional, results[1].SourceKind)
}

func TestSearchCountBound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(resultsPage))
	}))
	defer srv.Close()
	withSearchBase(t, srv.URL)

	s := NewSearcher(types.SearchConfig{}, zap.NewNop())
	results := s.Search(context.Background(), "Jane Doe", 1, source.General)
	assert.Len(t, results, 1)
}

func TestSearchEmptyOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()
	withSearchBase(t, srv.URL)

	s := NewSearcher(types.SearchConfig{}, zap.NewNop())
	assert.Empty(t, s.Search(context.Background(), "anything", 5, source.General))
}

func TestSearchEmptyOnUnreachableEngine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(nil))
	srv.Close() // connection refused from here on
	withSearchBase(t, srv.URL)

	s := NewSearcher(types.SearchConfig{}, zap.NewNop())
	assert.Empty(t, s.Search(context.Background(), "anything", 5, source.General))
}

func TestSearchRotatesUserAgent(t *testing.T) {
	var agents []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agents = append(agents, r.Header.Get("User-Agent"))
		w.Write([]byte(resultsPage))
	}))
	defer srv.Close()
	withSearchBase(t, srv.URL)

	s := NewSearcher(types.SearchConfig{}, zap.NewNop())
	for i := 0; i < 5; i++ {
		s.Search(context.Background(), "Jane Doe", 1, source.General)
	}

	require.Len(t, agents, 5)
	for _, ua := range agents {
		assert.Contains(t, webfetch.UserAgents, ua,
			"search requests must draw from the shared desktop signature pool")
	}
}

func TestAugmentQuery(t *testing.T) {
	tests := []struct {
		kind source.Kind
		want string
	}{
		{source.Scholar, "q site:scholar.google.com"},
		{source.Academic, "q (pdf OR article OR paper OR publication OR research)"},
		{source.Institutional, "q (university OR institute OR college OR faculty)"},
		{source.General, "q"},
		{source.PDF, "q"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, augmentQuery("q", tt.kind))
		})
	}
}

func TestUnwrapRedirect(t *testing.T) {
	assert.Equal(t, "https://x.test/a", unwrapRedirect("/url?q=https://x.test/a&sa=U&ved=2"))
	assert.Equal(t, "https://x.test/a", unwrapRedirect("https://x.test/a"))
}
