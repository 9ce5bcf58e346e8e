package driving

import (
	"context"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
)

// IngestService turns raw material into indexed knowledge.
type IngestService interface {
	// IngestText chunks, embeds, and indexes plain text.
	// A partial result (ChunksCreated < TotalChunks) is returned
	// without error.
	IngestText(ctx context.Context, in TextIngestInput) (*domain.IngestResult, error)

	// IngestFile downloads and extracts a binary file, then ingests the
	// extracted text. Extraction failure aborts before any chunk is
	// created.
	IngestFile(ctx context.Context, in FileIngestInput) (*domain.IngestResult, error)
}

// TextIngestInput describes a manual text ingestion.
type TextIngestInput struct {
	// Title is the document title. Required.
	Title string

	// Content is the full document text. Required.
	Content string

	// OwnerID is the tenant identity. Required.
	OwnerID string

	// Scope optionally binds the document to one logical agent.
	Scope string
}

// FileIngestInput describes a file ingestion.
type FileIngestInput struct {
	// Title is the document title. Required.
	Title string

	// StoragePath locates the uploaded file in file storage. Required.
	StoragePath string

	// MIMEType is the file's MIME type. Required.
	MIMEType string

	// Filename is the original file name, kept for display.
	Filename string

	// OwnerID is the tenant identity. Required.
	OwnerID string

	// Scope optionally binds the document to one logical agent.
	Scope string
}
