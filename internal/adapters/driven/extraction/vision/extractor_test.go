package vision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
)

// fakeLLM implements driven.LLMService.
type fakeLLM struct {
	response string
	err      error
	lastFile driven.InlineFile
}

func (f *fakeLLM) Complete(_ context.Context, _, _ string, _ driven.CompletionOptions) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) CompleteWithFile(_ context.Context, _, _ string, file driven.InlineFile, _ driven.CompletionOptions) (string, error) {
	f.lastFile = file
	return f.response, f.err
}

func (f *fakeLLM) ModelName() string { return "fake" }
func (f *fakeLLM) Close() error      { return nil }

func TestExtract(t *testing.T) {
	llm := &fakeLLM{response: "  CONTRACT OF EMPLOYMENT\n\nClause 1. Parties.  "}
	e := New(llm)

	text, err := e.Extract(context.Background(), []byte("pdf bytes"), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "CONTRACT OF EMPLOYMENT\n\nClause 1. Parties.", text, "response is trimmed and used verbatim")
	assert.Equal(t, "application/pdf", llm.lastFile.MIMEType)
	assert.Equal(t, []byte("pdf bytes"), llm.lastFile.Data)
}

func TestExtract_NearEmptyResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t "},
		{"too short", "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(&fakeLLM{response: tt.response})
			_, err := e.Extract(context.Background(), []byte("scan"), "image/png")
			assert.ErrorIs(t, err, domain.ErrExtractionEmpty)
		})
	}
}

func TestExtract_ModelError(t *testing.T) {
	e := New(&fakeLLM{err: errors.New("model overloaded")})

	_, err := e.Extract(context.Background(), []byte("scan"), "application/pdf")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrExtractionEmpty)
}

func TestExtract_EmptyFile(t *testing.T) {
	e := New(&fakeLLM{response: "some text content here"})

	_, err := e.Extract(context.Background(), nil, "application/pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
