// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/outreach-engine/internal/aggregate"
	"github.com/pdiddy/outreach-engine/internal/candidate"
	"github.com/pdiddy/outreach-engine/internal/position"
	"github.com/pdiddy/outreach-engine/internal/webfetch"
	"github.com/pdiddy/outreach-engine/internal/websearch"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// pipelineConfig assembles stage configuration from the config file,
// environment, and loaded secrets.
func pipelineConfig() types.PipelineConfig {
	cfg := types.PipelineConfig{
		Fetch: types.FetchConfig{
			HTTPConfig:     types.HTTPConfig{Timeout: viper.GetDuration("fetch.timeout")},
			ReaderEndpoint: viper.GetString("fetch.reader_endpoint"),
			ReaderAPIKey:   secretDefault("reader-api-key", viper.GetString("fetch.reader_api_key")),
			MaxAttempts:    viper.GetInt("fetch.max_attempts"),
		},
		Search: types.SearchConfig{
			HTTPConfig:  types.HTTPConfig{Timeout: viper.GetDuration("search.timeout")},
			ResultCount: viper.GetInt("search.result_count"),
		},
		Research: types.ResearchConfig{
			MaxPapers:  viper.GetInt("research.max_papers"),
			EnrichRate: viper.GetFloat64("research.enrich_rate"),
		},
		Candidate: types.CandidateConfig{
			CVPath:     viper.GetString("candidate.cv_path"),
			DataDir:    viper.GetString("candidate.data_dir"),
			MaxResults: viper.GetInt("candidate.max_results"),
		},
	}
	if cfg.Candidate.DataDir == "" {
		cfg.Candidate.DataDir = "data"
	}
	return cfg
}

// buildAggregator wires the fetcher, searcher, and aggregator for one
// command invocation.
func buildAggregator(cfg types.PipelineConfig) *aggregate.Aggregator {
	fetcher := webfetch.NewFetcher(cfg.Fetch, logger)
	searcher := websearch.NewSearcher(cfg.Search, logger)
	return aggregate.New(fetcher, searcher, cfg.Research, logger)
}

func buildPositionExtractor(cfg types.PipelineConfig) *position.Extractor {
	return position.New(webfetch.NewFetcher(cfg.Fetch, logger), logger)
}

func openCandidateStore(cfg types.PipelineConfig) (*candidate.Store, error) {
	return candidate.NewStore(cfg.Candidate)
}
