package driven

import "context"

// TextExtractor converts opaque binary documents (scanned or structured
// PDF, DOCX) into plain text. Used as a fallback when no native text
// layer exists.
//
// Extraction is a single best-effort call with no retry at this layer;
// retry policy belongs to the ingestion caller. An empty or near-empty
// result must be reported as domain.ErrExtractionEmpty.
type TextExtractor interface {
	// Extract returns the plain text content of the file.
	Extract(ctx context.Context, data []byte, mimeType string) (string, error)
}
