// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package candidate

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var termRe = regexp.MustCompile(`[a-z0-9+#]+`)

// terms tokenizes text into a lowercase term set.
func terms(text string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range termRe.FindAllString(strings.ToLower(text), -1) {
		set[t] = true
	}
	return set
}

// Search ranks stored chunks by distinct-query-term overlap and returns
// the top k. Chunks with no overlap are dropped; ties keep document
// order. ErrNotLoaded is returned before any CV has been stored.
func (s *Store) Search(ctx context.Context, query string, k int) ([]Chunk, error) {
	if !s.Loaded(ctx) {
		return nil, ErrNotLoaded
	}
	if k <= 0 {
		k = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx, `SELECT seq, content FROM cv_chunks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	queryTerms := terms(query)

	type scored struct {
		chunk Chunk
		score int
	}
	var candidates []scored

	for rows.Next() {
		var c Chunk
		if err := rows.Scan(&c.Seq, &c.Content); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}
		chunkTerms := terms(c.Content)
		score := 0
		for t := range queryTerms {
			if chunkTerms[t] {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{chunk: c, score: score})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	chunks := make([]Chunk, len(candidates))
	for i, c := range candidates {
		chunks[i] = c.chunk
	}
	return chunks, nil
}

// RenderResults formats search hits as numbered result blocks.
func RenderResults(chunks []Chunk) string {
	var blocks []string
	for i, c := range chunks {
		blocks = append(blocks, fmt.Sprintf("Result %d:\n%s\n", i+1, c.Content))
	}
	return strings.Join(blocks, "\n")
}
