package services

import (
	"context"
	"fmt"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driving"
	"github.com/lexikon-ai/lexikon/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages ingested documents with ownership checks.
type DocumentService struct {
	docStore    driven.DocumentStore
	vectorStore driven.VectorStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore, vectorStore driven.VectorStore) *DocumentService {
	return &DocumentService{
		docStore:    docStore,
		vectorStore: vectorStore,
	}
}

// Get retrieves a document owned by ownerID.
// A document owned by another tenant is reported as not found.
func (s *DocumentService) Get(ctx context.Context, documentID, ownerID string) (*domain.Document, error) {
	if documentID == "" || ownerID == "" {
		return nil, fmt.Errorf("%w: document and owner are required", domain.ErrInvalidInput)
	}

	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.OwnerID != ownerID {
		// Fail closed: never leak existence across tenants.
		return nil, domain.ErrNotFound
	}

	return doc, nil
}

// List returns all documents owned by ownerID.
func (s *DocumentService) List(ctx context.Context, ownerID string) ([]domain.Document, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}
	return s.docStore.ListDocuments(ctx, ownerID)
}

// Delete removes a document and cascades to all its chunks, including
// any left over from a partial ingestion.
func (s *DocumentService) Delete(ctx context.Context, documentID, ownerID string) error {
	doc, err := s.Get(ctx, documentID, ownerID)
	if err != nil {
		return err
	}

	if err := s.vectorStore.DeleteChunksByDocument(ctx, doc.ID); err != nil {
		return fmt.Errorf("delete chunks: %w", err)
	}
	if err := s.docStore.DeleteDocument(ctx, doc.ID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	logger.Info("Deleted document %s and its chunks", doc.ID)
	return nil
}
