package driven

import (
	"context"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
)

// DocumentStore persists document metadata and full text.
// Chunks live in the VectorStore; this store holds the document rows
// that chunk deletion cascades from.
type DocumentStore interface {
	// SaveDocument stores a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents for an owner.
	ListDocuments(ctx context.Context, ownerID string) ([]domain.Document, error)

	// DeleteDocument removes a document row.
	DeleteDocument(ctx context.Context, id string) error

	// Close releases resources.
	Close() error
}
