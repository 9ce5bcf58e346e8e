package driven

import "context"

// FileStorage retrieves uploaded file content by storage path.
// Consumed once per file ingestion, before extraction.
type FileStorage interface {
	// Download returns the raw bytes stored at path.
	Download(ctx context.Context, path string) ([]byte, error)
}
