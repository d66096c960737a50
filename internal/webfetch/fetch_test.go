// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

func testFetcher(t *testing.T, cfg types.FetchConfig) *Fetcher {
	t.Helper()
	old := RetryBaseDelay
	RetryBaseDelay = time.Millisecond
	t.Cleanup(func() { RetryBaseDelay = old })
	return NewFetcher(cfg, zap.NewNop())
}

func TestRetryBudgetExactlyThreeAttempts(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := testFetcher(t, types.FetchConfig{})
	got := f.Fetch(context.Background(), srv.URL)

	if n := attempts.Load(); n != 3 {
		t.Errorf("attempts = %d, want 3", n)
	}
	if !IsFailure(got) {
		t.Errorf("Fetch = %q, want sentinel failure", got)
	}
	if !strings.Contains(got, srv.URL) {
		t.Errorf("failure value %q should embed the URL", got)
	}
}

func TestNonRetryableStatusNotRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := testFetcher(t, types.FetchConfig{})
	got := f.Fetch(context.Background(), srv.URL)

	if n := attempts.Load(); n != 1 {
		t.Errorf("attempts = %d, want 1 (404 is permanent)", n)
	}
	if !IsFailure(got) {
		t.Errorf("Fetch = %q, want sentinel failure", got)
	}
}

func TestRecoveryWithinBudget(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("<html><body><main>recovered</main></body></html>"))
	}))
	defer srv.Close()

	f := testFetcher(t, types.FetchConfig{})
	got := f.Fetch(context.Background(), srv.URL)
	if got != "recovered" {
		t.Errorf("Fetch = %q, want %q", got, "recovered")
	}
}

func TestMainContentPreference(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"main preferred over body",
			`<html><body>noise<main>signal</main></body></html>`,
			"signal",
		},
		{
			"article when no main",
			`<html><body>noise<article>story</article></body></html>`,
			"story",
		},
		{
			"content div when no article",
			`<html><body>noise<div class="content">page</div></body></html>`,
			"page",
		},
		{
			"body fallback",
			`<html><body>everything</body></html>`,
			"everything",
		},
		{
			"scripts stripped",
			`<html><body><main>text<script>var x=1;</script></main></body></html>`,
			"text",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.html))
			}))
			defer srv.Close()

			f := testFetcher(t, types.FetchConfig{})
			if got := f.Fetch(context.Background(), srv.URL); got != tt.want {
				t.Errorf("Fetch = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReaderServicePreferred(t *testing.T) {
	reader := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer k1" {
			t.Errorf("Authorization = %q, want bearer key", got)
		}
		w.Write([]byte(`{"data":{"markdown":"# Rendered"}}`))
	}))
	defer reader.Close()

	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("direct fetch should not run when the reader succeeds")
	}))
	defer direct.Close()

	f := testFetcher(t, types.FetchConfig{ReaderEndpoint: reader.URL, ReaderAPIKey: "k1"})
	if got := f.Fetch(context.Background(), direct.URL); got != "# Rendered" {
		t.Errorf("Fetch = %q, want reader markdown", got)
	}
}

func TestReaderFailureFallsBackToDirect(t *testing.T) {
	reader := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer reader.Close()

	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><main>direct</main></body></html>"))
	}))
	defer direct.Close()

	f := testFetcher(t, types.FetchConfig{ReaderEndpoint: reader.URL})
	if got := f.Fetch(context.Background(), direct.URL); got != "direct" {
		t.Errorf("Fetch = %q, want direct fallback content", got)
	}
}

func TestNormalize(t *testing.T) {
	in := "  a  b \n\n  c  \n"
	want := "a\nb\nc"
	if got := normalize(in); got != want {
		t.Errorf("normalize = %q, want %q", got, want)
	}
}

func TestFailureHelpers(t *testing.T) {
	v := Failure("https://x.test", context.DeadlineExceeded)
	if !IsFailure(v) {
		t.Errorf("IsFailure(%q) = false, want true", v)
	}
	if IsFailure("Professor: Jane") {
		t.Error("IsFailure matched ordinary content")
	}
}
