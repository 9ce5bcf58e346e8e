package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driving"
)

var (
	ingestTitle string
	ingestScope string
	ingestMIME  string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Add knowledge to the index",
	Long:  `Ingest text or files into the knowledge base.`,
}

var ingestTextCmd = &cobra.Command{
	Use:   "text [content]",
	Short: "Ingest plain text",
	Long: `Chunks, embeds, and indexes the given text. Reads from stdin
when content is "-".`,
	Args: cobra.ExactArgs(1),
	RunE: runIngestText,
}

var ingestFileCmd = &cobra.Command{
	Use:   "file [storage-path]",
	Short: "Ingest an uploaded file",
	Long: `Extracts text from an uploaded file and ingests it. The path is
resolved against the configured upload directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngestFile,
}

func init() {
	ingestCmd.PersistentFlags().StringVarP(&ingestTitle, "title", "t", "", "document title (required)")
	ingestCmd.PersistentFlags().StringVarP(&ingestScope, "scope", "s", "", "bind the document to one logical agent")
	ingestFileCmd.Flags().StringVarP(&ingestMIME, "mime", "m", "", "MIME type of the file (inferred from extension if omitted)")

	ingestCmd.AddCommand(ingestTextCmd)
	ingestCmd.AddCommand(ingestFileCmd)
	rootCmd.AddCommand(ingestCmd)
}

func runIngestText(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	owner, err := requireOwner()
	if err != nil {
		return err
	}

	content := args[0]
	if content == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		content = string(data)
	}

	result, err := ingestService.IngestText(cmd.Context(), driving.TextIngestInput{
		Title:   ingestTitle,
		Content: content,
		OwnerID: owner,
		Scope:   ingestScope,
	})
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	printIngestResult(cmd, result)
	return nil
}

func runIngestFile(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	owner, err := requireOwner()
	if err != nil {
		return err
	}

	storagePath := args[0]
	mimeType := ingestMIME
	if mimeType == "" {
		mimeType = inferMIMEType(storagePath)
	}

	title := ingestTitle
	if title == "" {
		title = filepath.Base(storagePath)
	}

	result, err := ingestService.IngestFile(cmd.Context(), driving.FileIngestInput{
		Title:       title,
		StoragePath: storagePath,
		MIMEType:    mimeType,
		Filename:    filepath.Base(storagePath),
		OwnerID:     owner,
		Scope:       ingestScope,
	})
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	printIngestResult(cmd, result)
	return nil
}

func printIngestResult(cmd *cobra.Command, result *domain.IngestResult) {
	cmd.Printf("Document %s ingested.\n", result.DocumentID)
	cmd.Printf("  Chunks: %d/%d indexed\n", result.ChunksCreated, result.TotalChunks)
	for _, f := range result.Failed {
		cmd.Printf("  Chunk %d failed: %s\n", f.Index, f.Reason)
	}
}

// inferMIMEType maps common extensions to MIME types.
func inferMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".txt", ".md":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
