// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import "context"

// EmbeddingService turns text into fixed-length dense vectors.
//
// Implementations must request a specific output dimensionality from the
// provider rather than relying on the model default, so that a dimension
// mismatch is a detectable contract violation instead of silent
// corruption. A mismatched vector length must be reported as
// domain.ErrVectorDimension.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	// The input is truncated to the provider's safe maximum before
	// sending.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size.
	// This must match the vector store column configuration.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}
