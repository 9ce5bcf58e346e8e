package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
)

func TestIngestCmd_HasSubcommands(t *testing.T) {
	commands := ingestCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "text")
	assert.Contains(t, commandNames, "file")
}

func TestIngestTextCmd_ReportsChunkCounts(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest", "text", "some knowledge", "--title", "Notes"})
	defer func() {
		rootCmd.SetArgs(nil)
		ingestTitle = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Document doc-1 ingested.")
	assert.Contains(t, buf.String(), "Chunks: 3/3 indexed")
}

func TestIngestTextCmd_ReportsPartialFailures(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	ingestService = &fakeIngestService{
		result: &domain.IngestResult{
			DocumentID:    "doc-1",
			ChunksCreated: 2,
			TotalChunks:   3,
			Failed:        []domain.ChunkFailure{{Index: 1, Reason: "embedding failed"}},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest", "text", "some knowledge", "--title", "Notes"})
	defer func() {
		rootCmd.SetArgs(nil)
		ingestTitle = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Chunks: 2/3 indexed")
	assert.Contains(t, buf.String(), "Chunk 1 failed: embedding failed")
}

func TestIngestTextCmd_RequiresOwner(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	ownerFlag = ""

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ingest", "text", "some knowledge", "--title", "Notes"})
	defer func() {
		rootCmd.SetArgs(nil)
		ingestTitle = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--owner is required")
}

func TestIngestFileCmd_DefaultsTitleAndMIME(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest", "file", "uploads/report.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "ingested")
}

func TestInferMIMEType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"report.pdf", "application/pdf"},
		{"scan.PNG", "image/png"},
		{"photo.jpeg", "image/jpeg"},
		{"notes.md", "text/plain"},
		{"blob.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, inferMIMEType(tt.path), tt.path)
	}
}
