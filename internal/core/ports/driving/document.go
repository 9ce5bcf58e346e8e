package driving

import (
	"context"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
)

// DocumentService manages ingested documents. Every operation verifies
// ownership and fails closed: a document owned by another tenant is
// indistinguishable from a missing one.
type DocumentService interface {
	// Get retrieves a document owned by ownerID.
	Get(ctx context.Context, documentID, ownerID string) (*domain.Document, error)

	// List returns all documents owned by ownerID.
	List(ctx context.Context, ownerID string) ([]domain.Document, error)

	// Delete removes a document and cascades to all its chunks,
	// including any left over from a partial ingestion.
	Delete(ctx context.Context, documentID, ownerID string) error
}
