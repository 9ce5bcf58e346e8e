package domain

// IngestResult reports the outcome of one ingestion run.
// Partial success (ChunksCreated < TotalChunks) is a valid, reportable
// outcome, not an error: each chunk is an independent unit of work
// against an external embedding API.
type IngestResult struct {
	// DocumentID is the created document.
	DocumentID string

	// ChunksCreated is how many chunks were embedded AND persisted.
	ChunksCreated int

	// TotalChunks is how many chunks the document text produced.
	TotalChunks int

	// Failed lists the chunks that were skipped, with reasons.
	Failed []ChunkFailure
}

// ChunkFailure records one skipped chunk during ingestion.
type ChunkFailure struct {
	// Index is the chunk's zero-based sequence index.
	Index int

	// Reason is a human-readable description of the failure.
	Reason string
}
