package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
	"github.com/lexikon-ai/lexikon/internal/logger"
)

// rerankPreviewChars bounds each candidate's preview in the prompt.
const rerankPreviewChars = 300

// rerankSystemPrompt instructs the model to answer with indices only.
const rerankSystemPrompt = `You rank text passages by relevance to a query.
Reply with a JSON array of passage numbers ordered most relevant first, e.g. [2, 0, 1].
Reply with the JSON array only, no explanation.`

// rerank asks the language model to reorder candidates and keeps its
// top topK. Reranking is a quality enhancement, never a hard
// dependency: on any failure the first topK candidates are returned in
// their original similarity order.
func (s *SearchService) rerank(ctx context.Context, query string, candidates []driven.ChunkHit, topK int) []driven.ChunkHit {
	if len(candidates) <= topK {
		// Nothing to narrow down; skip the model call.
		return candidates
	}
	if s.llm == nil {
		logger.Debug("Rerank requested but no LLM configured, keeping similarity order")
		return candidates[:topK]
	}

	raw, err := s.llm.Complete(ctx, rerankSystemPrompt, buildRerankPrompt(query, candidates), driven.CompletionOptions{
		MaxTokens:   200,
		Temperature: 0,
	})
	if err != nil {
		logger.Warn("Rerank call failed, keeping similarity order: %v", err)
		return candidates[:topK]
	}

	indices, err := parseRanking(raw, len(candidates))
	if err != nil {
		logger.Warn("Rerank response unusable, keeping similarity order: %v", err)
		return candidates[:topK]
	}

	reranked := make([]driven.ChunkHit, 0, topK)
	for _, idx := range indices {
		reranked = append(reranked, candidates[idx])
		if len(reranked) == topK {
			break
		}
	}

	return reranked
}

// buildRerankPrompt renders the query and a numbered, truncated preview
// of every candidate.
func buildRerankPrompt(query string, candidates []driven.ChunkHit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Query: %s\n\nPassages:\n", query)
	for i, c := range candidates {
		preview := c.Content
		if len(preview) > rerankPreviewChars {
			preview = preview[:rerankPreviewChars]
		}
		preview = strings.ReplaceAll(preview, "\n", " ")
		fmt.Fprintf(&b, "[%d] %s\n", i, preview)
	}

	return b.String()
}

// parseRanking extracts an ordered list of candidate indices from a
// model response. The response may wrap the JSON array in markdown code
// fences. Out-of-range and duplicate indices are dropped; an empty
// usable ranking is an error so callers fall back to similarity order.
func parseRanking(raw string, numCandidates int) ([]int, error) {
	trimmed := stripCodeFences(raw)

	var indices []int
	if err := json.Unmarshal([]byte(trimmed), &indices); err != nil {
		return nil, fmt.Errorf("%w: not a JSON array: %v", domain.ErrRerankFailed, err)
	}

	seen := make(map[int]bool, len(indices))
	valid := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= numCandidates || seen[idx] {
			continue
		}
		seen[idx] = true
		valid = append(valid, idx)
	}

	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: no valid indices in %q", domain.ErrRerankFailed, raw)
	}

	return valid, nil
}

// stripCodeFences removes a surrounding markdown code fence, with or
// without a language tag.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if nl := strings.IndexByte(trimmed, '\n'); nl >= 0 && !strings.HasPrefix(trimmed, "[") {
		// Drop a language tag like "json" on the fence line.
		trimmed = trimmed[nl+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}
