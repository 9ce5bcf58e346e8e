package domain

// Search defaults. A zero value in SearchOptions means "use the default".
const (
	// DefaultThreshold is the minimum cosine similarity for a result.
	DefaultThreshold = 0.5

	// DefaultLimit is the number of results returned when unspecified.
	DefaultLimit = 5

	// MaxRerankCandidates caps the widened candidate pool handed to the
	// reranker, regardless of the requested limit.
	MaxRerankCandidates = 20
)

// SearchOptions configures a knowledge base query.
type SearchOptions struct {
	// OwnerID is the requesting tenant. Required.
	OwnerID string

	// Scope optionally restricts results to one logical agent.
	Scope string

	// Threshold is the inclusive cosine similarity lower bound.
	// Zero means DefaultThreshold.
	Threshold float64

	// Limit is the maximum number of results. Zero means DefaultLimit.
	Limit int

	// Rerank asks a language model to reorder a widened candidate pool.
	// Rerank failures fall back to raw similarity order.
	Rerank bool
}

// SearchResult is a single ranked knowledge base hit.
type SearchResult struct {
	// ChunkID is the matched chunk.
	ChunkID string

	// DocumentID is the chunk's parent document.
	DocumentID string

	// Content is the chunk text.
	Content string

	// Similarity is the cosine similarity against the query vector.
	Similarity float64
}

// MemorySearchOptions configures a contact memory query.
type MemorySearchOptions struct {
	// OwnerID is the requesting tenant. Required.
	OwnerID string

	// Scope optionally restricts results to one logical agent.
	Scope string

	// Threshold is the inclusive cosine similarity lower bound.
	// Zero means DefaultThreshold.
	Threshold float64

	// Limit is the maximum number of results. Zero means DefaultLimit.
	Limit int
}

// MemoryResult is a single ranked contact memory hit.
type MemoryResult struct {
	// MemoryID is the matched memory.
	MemoryID string

	// ContactID is the end-contact the memory belongs to.
	ContactID string

	// Content is the memory text.
	Content string

	// MemoryType is the memory's tag.
	MemoryType string

	// Similarity is the cosine similarity against the query vector.
	Similarity float64
}
