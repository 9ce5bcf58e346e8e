// Package vision extracts plain text from binary documents by sending
// them inline to a multimodal language model. It is the fallback for
// scanned PDFs and other files without a native text layer.
package vision

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// MinTextLength is the minimum usable extraction length. Shorter model
// output is treated as a failed extraction.
const MinTextLength = 10

// extractionMaxTokens bounds the model response for large documents.
const extractionMaxTokens = 8192

// systemPrompt keeps the model from editorialising: the response is
// used verbatim as the document text.
const systemPrompt = `You are a document text extractor.
Extract ALL text content from the provided document.
Preserve the document's structure: keep headings, paragraphs, and lists on their own lines.
Output only the extracted text. No commentary, no summaries, no markdown fences.`

const userPrompt = "Extract the text from this document."

// Extractor converts binary documents to plain text via a multimodal
// language model.
type Extractor struct {
	llm driven.LLMService
}

// New creates a new vision extractor backed by llm.
func New(llm driven.LLMService) *Extractor {
	return &Extractor{llm: llm}
}

// Extract returns the plain text content of the file.
// This is a single best-effort call; retry policy belongs to the
// caller. Returns domain.ErrExtractionEmpty when the model produces no
// usable text.
func (e *Extractor) Extract(ctx context.Context, data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}
	if e.llm == nil {
		return "", domain.ErrExtractorUnavailable
	}

	raw, err := e.llm.CompleteWithFile(ctx, systemPrompt, userPrompt, driven.InlineFile{
		MIMEType: mimeType,
		Data:     data,
	}, driven.CompletionOptions{
		MaxTokens: extractionMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("extraction call: %w", err)
	}

	text := strings.TrimSpace(raw)
	if len(text) < MinTextLength {
		return "", fmt.Errorf("%w: model returned %d characters", domain.ErrExtractionEmpty, len(text))
	}

	return text, nil
}
