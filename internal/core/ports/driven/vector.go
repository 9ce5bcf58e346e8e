package driven

import (
	"context"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
)

// VectorStore persists chunk and memory embeddings and performs
// cosine-similarity ranked search over them. Every operation is scoped
// by owner identity; implementations must never return rows belonging
// to another owner.
//
// Uniqueness and ordering guarantees are delegated to the underlying
// store's transactional semantics for a single insert or delete - no
// operation spans multiple chunk writes in one transaction.
type VectorStore interface {
	// InsertChunk persists one chunk with its embedding.
	InsertChunk(ctx context.Context, chunk *domain.Chunk) error

	// DeleteChunksByDocument removes all chunks of a document,
	// including any left over from a partial ingestion.
	DeleteChunksByDocument(ctx context.Context, documentID string) error

	// SimilaritySearch returns chunks ranked by cosine similarity
	// descending. The threshold is an inclusive lower bound.
	SimilaritySearch(ctx context.Context, query []float32, filter Filter) ([]ChunkHit, error)

	// InsertMemory persists one contact memory with its embedding.
	InsertMemory(ctx context.Context, memory *domain.Memory) error

	// SimilaritySearchByContact returns memories for one contact ranked
	// by cosine similarity descending.
	SimilaritySearchByContact(ctx context.Context, query []float32, contactID string, filter Filter) ([]MemoryHit, error)

	// Close releases resources.
	Close() error
}

// Filter scopes a similarity search.
type Filter struct {
	// OwnerID is the requesting tenant. Required.
	OwnerID string

	// Scope restricts results to one logical agent when non-empty.
	Scope string

	// Threshold is the inclusive cosine similarity lower bound.
	Threshold float64

	// Limit is the maximum number of rows to return.
	Limit int
}

// ChunkHit is one similarity-ranked chunk row.
type ChunkHit struct {
	// ChunkID is the matched chunk.
	ChunkID string

	// DocumentID is the chunk's parent document.
	DocumentID string

	// Content is the chunk text.
	Content string

	// Similarity is the cosine similarity score.
	Similarity float64
}

// MemoryHit is one similarity-ranked memory row.
type MemoryHit struct {
	// MemoryID is the matched memory.
	MemoryID string

	// ContactID is the end-contact the memory belongs to.
	ContactID string

	// Content is the memory text.
	Content string

	// MemoryType is the memory's tag.
	MemoryType string

	// Similarity is the cosine similarity score.
	Similarity float64
}
