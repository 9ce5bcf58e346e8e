// Package memory provides an in-memory VectorStore. It is used by the
// CLI when no database is configured and by tests that need real
// similarity semantics without PostgreSQL.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store keeps chunks and memories in process memory, guarded by a
// single mutex. Searches scan linearly; this is fine for the small
// corpora the in-memory backend is meant for.
type Store struct {
	mu       sync.RWMutex
	chunks   []*domain.Chunk
	memories []*domain.Memory
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// InsertChunk stores a copy of the chunk.
func (s *Store) InsertChunk(_ context.Context, chunk *domain.Chunk) error {
	if len(chunk.Embedding) != domain.EmbeddingDimensions {
		return fmt.Errorf("%w: expected %d dimensions, got %d", domain.ErrVectorDimension, domain.EmbeddingDimensions, len(chunk.Embedding))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := *chunk
	s.chunks = append(s.chunks, &c)
	return nil
}

// DeleteChunksByDocument removes all chunks of a document.
func (s *Store) DeleteChunksByDocument(_ context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.chunks[:0]
	for _, c := range s.chunks {
		if c.DocumentID != documentID {
			kept = append(kept, c)
		}
	}
	s.chunks = kept
	return nil
}

// SimilaritySearch returns chunks ranked by cosine similarity
// descending. The threshold is an inclusive lower bound.
func (s *Store) SimilaritySearch(_ context.Context, query []float32, filter driven.Filter) ([]driven.ChunkHit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []driven.ChunkHit
	for _, c := range s.chunks {
		if c.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Scope != "" && c.Scope != filter.Scope {
			continue
		}
		sim := cosineSimilarity(query, c.Embedding)
		if sim < filter.Threshold {
			continue
		}
		hits = append(hits, driven.ChunkHit{
			ChunkID:    c.ID,
			DocumentID: c.DocumentID,
			Content:    c.Content,
			Similarity: sim,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})
	if filter.Limit > 0 && len(hits) > filter.Limit {
		hits = hits[:filter.Limit]
	}

	return hits, nil
}

// InsertMemory stores a copy of the memory.
func (s *Store) InsertMemory(_ context.Context, memory *domain.Memory) error {
	if len(memory.Embedding) != domain.EmbeddingDimensions {
		return fmt.Errorf("%w: expected %d dimensions, got %d", domain.ErrVectorDimension, domain.EmbeddingDimensions, len(memory.Embedding))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := *memory
	s.memories = append(s.memories, &m)
	return nil
}

// SimilaritySearchByContact returns memories for one contact ranked by
// cosine similarity descending.
func (s *Store) SimilaritySearchByContact(_ context.Context, query []float32, contactID string, filter driven.Filter) ([]driven.MemoryHit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []driven.MemoryHit
	for _, m := range s.memories {
		if m.OwnerID != filter.OwnerID || m.ContactID != contactID {
			continue
		}
		if filter.Scope != "" && m.Scope != filter.Scope {
			continue
		}
		sim := cosineSimilarity(query, m.Embedding)
		if sim < filter.Threshold {
			continue
		}
		hits = append(hits, driven.MemoryHit{
			MemoryID:   m.ID,
			ContactID:  m.ContactID,
			Content:    m.Content,
			MemoryType: m.MemoryType,
			Similarity: sim,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})
	if filter.Limit > 0 && len(hits) > filter.Limit {
		hits = hits[:filter.Limit]
	}

	return hits, nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// or 0 when either vector has zero magnitude or the lengths differ.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
