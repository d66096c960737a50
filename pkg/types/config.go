// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// FetchConfig holds settings for the content retriever.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// ReaderEndpoint is an optional high-fidelity rendering service that
	// returns page markdown (e.g. a Firecrawl-compatible scrape endpoint).
	// When empty or unreachable the retriever falls back to a direct fetch.
	ReaderEndpoint string `json:"reader_endpoint,omitempty" yaml:"reader_endpoint,omitempty"`

	// ReaderAPIKey authenticates against the rendering service.
	ReaderAPIKey string `json:"reader_api_key,omitempty" yaml:"reader_api_key,omitempty"`

	// MaxAttempts is the total number of direct-fetch attempts, including
	// the first (default 3). Only HTTP 500, 502, and 504 are retried.
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`
}

// SearchConfig holds settings for the web query planner.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// ResultCount is the number of results requested per search (default 10).
	ResultCount int `json:"result_count" yaml:"result_count"`
}

// ResearchConfig holds settings for the research aggregator.
type ResearchConfig struct {
	// MaxPapers bounds the paper list and the enrichment loop (default 10).
	MaxPapers int `json:"max_papers" yaml:"max_papers"`

	// EnrichRate is the enrichment fetch rate in requests per second
	// (default 1). Pacing against the upstream search surface, not a
	// correctness requirement.
	EnrichRate float64 `json:"enrich_rate" yaml:"enrich_rate"`
}

// CandidateConfig holds settings for the candidate CV store.
type CandidateConfig struct {
	// CVPath is the candidate's CV in PDF format.
	CVPath string `json:"cv_path" yaml:"cv_path"`

	// DataDir is where the chunk database lives (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default number of chunks returned per search
	// (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch     FetchConfig     `json:"fetch" yaml:"fetch"`
	Search    SearchConfig    `json:"search" yaml:"search"`
	Research  ResearchConfig  `json:"research" yaml:"research"`
	Candidate CandidateConfig `json:"candidate" yaml:"candidate"`
}
