package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driving"
	"github.com/lexikon-ai/lexikon/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService answers queries by embedding them and ranking chunks by
// cosine similarity, with optional language model reranking.
type SearchService struct {
	vectorStore driven.VectorStore
	embedder    driven.EmbeddingService
	llm         driven.LLMService
}

// NewSearchService creates a new search service.
// The llm parameter is optional (can be nil); without it, rerank
// requests silently keep raw similarity order.
func NewSearchService(
	vectorStore driven.VectorStore,
	embedder driven.EmbeddingService,
	llm driven.LLMService,
) *SearchService {
	return &SearchService{
		vectorStore: vectorStore,
		embedder:    embedder,
		llm:         llm,
	}
}

// Search performs a similarity search over the owner's chunks.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}
	if opts.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultLimit
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = domain.DefaultThreshold
	}

	logger.Debug("Search: query=%q owner=%s scope=%q threshold=%.2f limit=%d rerank=%t",
		query, opts.OwnerID, opts.Scope, threshold, limit, opts.Rerank)

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	// Widen the pool when reranking so the model has material to
	// improve on raw similarity ordering.
	fetchLimit := limit
	if opts.Rerank {
		fetchLimit = limit * 3
		if fetchLimit > domain.MaxRerankCandidates {
			fetchLimit = domain.MaxRerankCandidates
		}
	}

	hits, err := s.vectorStore.SimilaritySearch(ctx, embedding, driven.Filter{
		OwnerID:   opts.OwnerID,
		Scope:     opts.Scope,
		Threshold: threshold,
		Limit:     fetchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	logger.Debug("Search: %d candidates", len(hits))

	if opts.Rerank {
		hits = s.rerank(ctx, query, hits, limit)
	} else if len(hits) > limit {
		hits = hits[:limit]
	}

	results := make([]domain.SearchResult, len(hits))
	for i, hit := range hits {
		results[i] = domain.SearchResult{
			ChunkID:    hit.ChunkID,
			DocumentID: hit.DocumentID,
			Content:    hit.Content,
			Similarity: hit.Similarity,
		}
	}

	return results, nil
}
