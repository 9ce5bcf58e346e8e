package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
)

func seedDocument(t *testing.T, docs *mockDocStore, id, ownerID string) {
	t.Helper()
	err := docs.SaveDocument(context.Background(), &domain.Document{
		ID:      id,
		OwnerID: ownerID,
		Title:   "seed",
		Content: "seed content",
	})
	require.NoError(t, err)
}

func TestDocumentGet_OwnershipFailsClosed(t *testing.T) {
	docs := newMockDocStore()
	seedDocument(t, docs, "doc-1", "owner-1")
	svc := NewDocumentService(docs, &mockVectorStore{})

	// Wrong owner looks exactly like a missing document.
	_, err := svc.Get(context.Background(), "doc-1", "owner-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(context.Background(), "no-such-doc", "owner-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	doc, err := svc.Get(context.Background(), "doc-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.ID)
}

func TestDocumentDelete_Cascades(t *testing.T) {
	docs := newMockDocStore()
	seedDocument(t, docs, "doc-1", "owner-1")

	vectors := &mockVectorStore{}
	for i := 0; i < 3; i++ {
		require.NoError(t, vectors.InsertChunk(context.Background(), &domain.Chunk{
			ID:         string(rune('a' + i)),
			DocumentID: "doc-1",
			OwnerID:    "owner-1",
			Position:   i,
		}))
	}

	svc := NewDocumentService(docs, vectors)
	require.NoError(t, svc.Delete(context.Background(), "doc-1", "owner-1"))

	assert.Equal(t, []string{"doc-1"}, vectors.deletedDocs)
	assert.Empty(t, vectors.chunks)

	_, err := svc.Get(context.Background(), "doc-1", "owner-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentDelete_WrongOwnerLeavesChunks(t *testing.T) {
	docs := newMockDocStore()
	seedDocument(t, docs, "doc-1", "owner-1")

	vectors := &mockVectorStore{}
	require.NoError(t, vectors.InsertChunk(context.Background(), &domain.Chunk{
		ID: "c1", DocumentID: "doc-1", OwnerID: "owner-1",
	}))

	svc := NewDocumentService(docs, vectors)
	err := svc.Delete(context.Background(), "doc-1", "owner-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Len(t, vectors.chunks, 1, "nothing may be deleted on an ownership violation")
	assert.Empty(t, vectors.deletedDocs)
}

func TestDocumentList_FiltersByOwner(t *testing.T) {
	docs := newMockDocStore()
	seedDocument(t, docs, "doc-1", "owner-1")
	seedDocument(t, docs, "doc-2", "owner-1")
	seedDocument(t, docs, "doc-3", "owner-2")

	svc := NewDocumentService(docs, &mockVectorStore{})

	list, err := svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, doc := range list {
		assert.Equal(t, "owner-1", doc.OwnerID)
	}
}
