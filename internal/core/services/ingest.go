package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lexikon-ai/lexikon/internal/chunker"
	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driving"
	"github.com/lexikon-ai/lexikon/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// DefaultChunkConcurrency bounds how many chunks are embedded and
// persisted in flight during one ingestion.
const DefaultChunkConcurrency = 4

// IngestService orchestrates Extractor -> Chunker -> Embedder -> vector
// store writes for new documents.
//
// Chunks are independent units of work: a failure embedding or
// persisting one chunk is logged and skipped, never aborting its
// siblings. The result carries chunksCreated/totalChunks so partial
// success is first-class and visible.
type IngestService struct {
	docStore    driven.DocumentStore
	vectorStore driven.VectorStore
	embedder    driven.EmbeddingService
	extractor   driven.TextExtractor
	fileStore   driven.FileStorage
	splitter    *chunker.Splitter
	concurrency int
}

// IngestOption configures the ingest service.
type IngestOption func(*IngestService)

// WithSplitter replaces the default chunker.
func WithSplitter(s *chunker.Splitter) IngestOption {
	return func(svc *IngestService) {
		if s != nil {
			svc.splitter = s
		}
	}
}

// WithChunkConcurrency sets the per-ingestion worker bound.
func WithChunkConcurrency(n int) IngestOption {
	return func(svc *IngestService) {
		if n > 0 {
			svc.concurrency = n
		}
	}
}

// NewIngestService creates a new ingest service.
// The extractor and fileStore are optional; when nil, file ingestion is
// disabled and only IngestText is available.
func NewIngestService(
	docStore driven.DocumentStore,
	vectorStore driven.VectorStore,
	embedder driven.EmbeddingService,
	extractor driven.TextExtractor,
	fileStore driven.FileStorage,
	opts ...IngestOption,
) *IngestService {
	svc := &IngestService{
		docStore:    docStore,
		vectorStore: vectorStore,
		embedder:    embedder,
		extractor:   extractor,
		fileStore:   fileStore,
		splitter:    chunker.New(),
		concurrency: DefaultChunkConcurrency,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

// IngestText chunks, embeds, and indexes plain text.
func (s *IngestService) IngestText(ctx context.Context, in driving.TextIngestInput) (*domain.IngestResult, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" || in.OwnerID == "" {
		return nil, fmt.Errorf("%w: title, content, and owner are required", domain.ErrInvalidInput)
	}

	doc := &domain.Document{
		ID:        uuid.New().String(),
		OwnerID:   in.OwnerID,
		Scope:     in.Scope,
		Title:     in.Title,
		Content:   in.Content,
		Source:    domain.SourceManual,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return s.ingest(ctx, doc)
}

// IngestFile downloads, extracts, and ingests a binary file.
func (s *IngestService) IngestFile(ctx context.Context, in driving.FileIngestInput) (*domain.IngestResult, error) {
	if strings.TrimSpace(in.Title) == "" || in.StoragePath == "" || in.MIMEType == "" || in.OwnerID == "" {
		return nil, fmt.Errorf("%w: title, storage path, MIME type, and owner are required", domain.ErrInvalidInput)
	}
	if s.fileStore == nil {
		return nil, domain.ErrFileStorageUnavailable
	}
	if s.extractor == nil {
		return nil, domain.ErrExtractorUnavailable
	}

	data, err := s.fileStore.Download(ctx, in.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}

	logger.Debug("Extracting text: %s (%s, %d bytes)", in.StoragePath, in.MIMEType, len(data))
	content, err := s.extractor.Extract(ctx, data, in.MIMEType)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	doc := &domain.Document{
		ID:       uuid.New().String(),
		OwnerID:  in.OwnerID,
		Scope:    in.Scope,
		Title:    in.Title,
		Content:  content,
		Source:   domain.SourceUpload,
		Filename: in.Filename,
		Metadata: map[string]any{
			"mime_type":    in.MIMEType,
			"storage_path": in.StoragePath,
			"size_bytes":   len(data),
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return s.ingest(ctx, doc)
}

// ingest persists the document row, then processes every chunk as an
// independent unit of work.
func (s *IngestService) ingest(ctx context.Context, doc *domain.Document) (*domain.IngestResult, error) {
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	texts := s.splitter.Split(doc.Content)
	logger.Info("Ingesting %q: %d chunks", doc.Title, len(texts))

	result := &domain.IngestResult{
		DocumentID:  doc.ID,
		TotalChunks: len(texts),
	}
	if len(texts) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	created := 0
	var failed []domain.ChunkFailure

	// Workers always return nil: one chunk's failure must not cancel or
	// corrupt sibling chunk writes.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, text := range texts {
		g.Go(func() error {
			if err := s.processChunk(gctx, doc, i, text); err != nil {
				logger.Warn("Chunk %d of %q skipped: %v", i, doc.Title, err)
				mu.Lock()
				failed = append(failed, domain.ChunkFailure{Index: i, Reason: err.Error()})
				mu.Unlock()
				return nil
			}
			mu.Lock()
			created++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(failed, func(a, b int) bool { return failed[a].Index < failed[b].Index })

	result.ChunksCreated = created
	result.Failed = failed

	logger.Info("Ingested %q: %d/%d chunks", doc.Title, result.ChunksCreated, result.TotalChunks)
	return result, nil
}

// processChunk embeds and persists one chunk.
func (s *IngestService) processChunk(ctx context.Context, doc *domain.Document, index int, text string) error {
	embedding, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("embed: %w", err)
	}

	chunk := &domain.Chunk{
		ID:         uuid.New().String(),
		DocumentID: doc.ID,
		OwnerID:    doc.OwnerID,
		Scope:      doc.Scope,
		Content:    text,
		Position:   index,
		Embedding:  embedding,
		WordCount:  chunker.WordCount(text),
	}

	if err := s.vectorStore.InsertChunk(ctx, chunk); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrChunkPersist, err)
	}

	return nil
}
