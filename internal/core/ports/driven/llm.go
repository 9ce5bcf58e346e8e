package driven

import "context"

// LLMService provides language model completions for reranking and
// document text extraction. This is an optional service for search -
// when nil, reranking is disabled and results keep raw similarity order.
type LLMService interface {
	// Complete produces a completion for a system instruction plus a
	// single user prompt.
	Complete(ctx context.Context, system, prompt string, opts CompletionOptions) (string, error)

	// CompleteWithFile produces a completion where the user turn carries
	// an inline base64-encoded file alongside the prompt text. Used for
	// vision-based text extraction from scanned documents.
	CompleteWithFile(ctx context.Context, system, prompt string, file InlineFile, opts CompletionOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}

// CompletionOptions configures a completion request.
type CompletionOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}

// InlineFile is a binary payload sent inline with a completion request.
type InlineFile struct {
	// MIMEType is the file's MIME type (e.g. "application/pdf").
	MIMEType string

	// Data is the raw file bytes. Adapters base64-encode it on the wire.
	Data []byte
}
