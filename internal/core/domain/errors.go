package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist, or is not
	// visible to the requesting owner. Ownership violations fail closed
	// with this error so that cross-tenant existence never leaks.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtractionEmpty indicates text extraction produced no usable
	// content. Ingestion aborts before any chunk is created.
	ErrExtractionEmpty = errors.New("extraction produced no usable text")

	// ErrEmbeddingFailed indicates an embed call failed or the provider
	// returned malformed output. Recovered as a skipped chunk during
	// ingestion; a hard failure for search and memory saves.
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrVectorDimension indicates the provider returned a vector whose
	// length does not match the system-wide fixed dimensionality.
	ErrVectorDimension = errors.New("embedding dimension mismatch")

	// ErrChunkPersist indicates the vector store rejected a chunk insert.
	// Recovered as a skipped chunk during ingestion.
	ErrChunkPersist = errors.New("chunk persist failed")

	// ErrRerankFailed indicates the rerank model call failed or its
	// response could not be parsed. Never surfaced to callers; search
	// falls back to raw similarity order.
	ErrRerankFailed = errors.New("rerank failed")

	// ErrEmbeddingUnavailable indicates no embedding service is
	// configured. Ingestion, search, and memory operations require one.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrExtractorUnavailable indicates no text extractor is configured.
	// File ingestion is disabled without one.
	ErrExtractorUnavailable = errors.New("text extractor unavailable")

	// ErrFileStorageUnavailable indicates no file storage is configured.
	ErrFileStorageUnavailable = errors.New("file storage unavailable")
)
