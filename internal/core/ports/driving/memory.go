package driving

import (
	"context"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
)

// MemoryService stores and recalls free-text memories per end-contact.
type MemoryService interface {
	// SaveMemory embeds and persists one memory, returning its ID.
	SaveMemory(ctx context.Context, in SaveMemoryInput) (string, error)

	// SearchMemories returns similarity-ranked memories for one contact.
	SearchMemories(ctx context.Context, contactID, query string, opts domain.MemorySearchOptions) ([]domain.MemoryResult, error)
}

// SaveMemoryInput describes one memory save.
type SaveMemoryInput struct {
	// ContactID is the end-contact the memory belongs to. Required.
	ContactID string

	// Content is the memory text. Required.
	Content string

	// OwnerID is the tenant identity. Required.
	OwnerID string

	// Scope optionally binds the memory to one logical agent.
	Scope string

	// MemoryType is a free-form tag (e.g. "preference", "fact").
	MemoryType string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any
}
