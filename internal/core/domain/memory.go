package domain

import "time"

// Memory is a free-text note attached to one end-contact.
// Memories are immutable, have their own embeddings, and are not part
// of the Document/Chunk cascade.
type Memory struct {
	// ID is the unique identifier for the memory.
	ID string

	// ContactID is the end-contact this memory belongs to.
	ContactID string

	// OwnerID is the tenant identity that owns this memory.
	OwnerID string

	// Scope optionally narrows visibility to one logical agent.
	Scope string

	// Content is the memory text.
	Content string

	// MemoryType is a free-form tag (e.g. "preference", "fact").
	MemoryType string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// Embedding is the dense vector representation of Content.
	Embedding []float32

	// CreatedAt is when the memory was saved.
	CreatedAt time.Time
}
