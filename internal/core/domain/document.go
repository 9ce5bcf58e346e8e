package domain

import "time"

// SourceKind identifies how a document entered the knowledge base.
type SourceKind string

const (
	// SourceManual is text pasted or typed directly by a user.
	SourceManual SourceKind = "manual"

	// SourceUpload is text extracted from an uploaded binary file.
	SourceUpload SourceKind = "upload"
)

// Document represents one unit of ingested knowledge.
// Its content is immutable once chunked; re-ingesting the same material
// creates a new document rather than mutating an existing one.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// OwnerID is the tenant identity that owns this document.
	// Every read and write is filtered by owner.
	OwnerID string

	// Scope optionally narrows visibility to one logical agent.
	// Empty means the document is visible owner-wide.
	Scope string

	// Title is the human-readable title.
	Title string

	// Content is the full extracted text before chunking.
	Content string

	// Source records how the document was created.
	Source SourceKind

	// Filename is the original file name for uploaded documents.
	Filename string

	// Metadata contains arbitrary key-value pairs
	// (MIME type, storage path, original byte size, ...).
	Metadata map[string]any

	// CreatedAt is when ingestion started.
	CreatedAt time.Time

	// UpdatedAt is when the document row was last written.
	UpdatedAt time.Time
}

// Chunk is a contiguous, bounded slice of a document's text.
// Chunks are created one-by-one during ingestion, never mutated, and
// deleted only via cascade when their document is deleted.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// OwnerID mirrors the parent document's owner for tenant filtering
	// at the vector store level.
	OwnerID string

	// Scope mirrors the parent document's scope.
	Scope string

	// Content is the chunk text, including any leading overlap.
	Content string

	// Position is the zero-based sequence index within the document.
	Position int

	// Embedding is the dense vector representation. Its length is fixed
	// system-wide (see EmbeddingDimensions).
	Embedding []float32

	// WordCount is the whitespace-delimited word count of Content.
	WordCount int
}

// EmbeddingDimensions is the system-wide embedding vector length.
// Every stored vector and every query vector must have exactly this
// many elements.
const EmbeddingDimensions = 768
