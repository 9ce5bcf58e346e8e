package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driving"
	"github.com/lexikon-ai/lexikon/internal/logger"
)

// Ensure MemoryService implements the interface.
var _ driving.MemoryService = (*MemoryService)(nil)

// DefaultMemoryType is used when a save does not tag the memory.
const DefaultMemoryType = "note"

// MemoryService stores and recalls free-text memories per end-contact.
// It reuses the embedding and vector search machinery of the knowledge
// base, additionally filtered by contact. Memories are typically short
// and few, so there is no rerank path.
type MemoryService struct {
	vectorStore driven.VectorStore
	embedder    driven.EmbeddingService
}

// NewMemoryService creates a new memory service.
func NewMemoryService(vectorStore driven.VectorStore, embedder driven.EmbeddingService) *MemoryService {
	return &MemoryService{
		vectorStore: vectorStore,
		embedder:    embedder,
	}
}

// SaveMemory embeds and persists one memory, returning its ID.
func (s *MemoryService) SaveMemory(ctx context.Context, in driving.SaveMemoryInput) (string, error) {
	if in.ContactID == "" || strings.TrimSpace(in.Content) == "" || in.OwnerID == "" {
		return "", fmt.Errorf("%w: contact, content, and owner are required", domain.ErrInvalidInput)
	}
	if s.embedder == nil {
		return "", domain.ErrEmbeddingUnavailable
	}

	embedding, err := s.embedder.Embed(ctx, in.Content)
	if err != nil {
		return "", fmt.Errorf("embed memory: %w", err)
	}

	memoryType := in.MemoryType
	if memoryType == "" {
		memoryType = DefaultMemoryType
	}

	memory := &domain.Memory{
		ID:         uuid.New().String(),
		ContactID:  in.ContactID,
		OwnerID:    in.OwnerID,
		Scope:      in.Scope,
		Content:    in.Content,
		MemoryType: memoryType,
		Metadata:   in.Metadata,
		Embedding:  embedding,
		CreatedAt:  time.Now(),
	}

	if err := s.vectorStore.InsertMemory(ctx, memory); err != nil {
		return "", fmt.Errorf("insert memory: %w", err)
	}

	logger.Debug("Saved memory %s for contact %s", memory.ID, in.ContactID)
	return memory.ID, nil
}

// SearchMemories returns similarity-ranked memories for one contact.
func (s *MemoryService) SearchMemories(ctx context.Context, contactID, query string, opts domain.MemorySearchOptions) ([]domain.MemoryResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.MemoryResult{}, nil
	}
	if contactID == "" || opts.OwnerID == "" {
		return nil, fmt.Errorf("%w: contact and owner are required", domain.ErrInvalidInput)
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

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := s.vectorStore.SimilaritySearchByContact(ctx, embedding, contactID, driven.Filter{
		OwnerID:   opts.OwnerID,
		Scope:     opts.Scope,
		Threshold: threshold,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("memory search: %w", err)
	}

	results := make([]domain.MemoryResult, len(hits))
	for i, hit := range hits {
		results[i] = domain.MemoryResult{
			MemoryID:   hit.MemoryID,
			ContactID:  hit.ContactID,
			Content:    hit.Content,
			MemoryType: hit.MemoryType,
			Similarity: hit.Similarity,
		}
	}

	return results, nil
}
