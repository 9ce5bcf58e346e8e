package cli

import (
	"context"
	"fmt"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driving"
)

// Fakes for the driving ports, used to exercise commands without real
// adapters.

type fakeIngestService struct {
	result *domain.IngestResult
	err    error
}

func (f *fakeIngestService) IngestText(_ context.Context, in driving.TextIngestInput) (*domain.IngestResult, error) {
	if in.Title == "" || in.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	return f.result, f.err
}

func (f *fakeIngestService) IngestFile(_ context.Context, _ driving.FileIngestInput) (*domain.IngestResult, error) {
	return f.result, f.err
}

type fakeSearchService struct {
	results []domain.SearchResult
	err     error
}

func (f *fakeSearchService) Search(_ context.Context, _ string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	if opts.OwnerID == "" {
		return nil, domain.ErrInvalidInput
	}
	return f.results, f.err
}

type fakeMemoryService struct {
	savedID string
	results []domain.MemoryResult
	err     error
}

func (f *fakeMemoryService) SaveMemory(_ context.Context, _ driving.SaveMemoryInput) (string, error) {
	return f.savedID, f.err
}

func (f *fakeMemoryService) SearchMemories(_ context.Context, _, _ string, _ domain.MemorySearchOptions) ([]domain.MemoryResult, error) {
	return f.results, f.err
}

type fakeDocumentService struct {
	docs []domain.Document
	err  error
}

func (f *fakeDocumentService) Get(_ context.Context, documentID, ownerID string) (*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == documentID && f.docs[i].OwnerID == ownerID {
			return &f.docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDocumentService) List(_ context.Context, ownerID string) ([]domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Document
	for i := range f.docs {
		if f.docs[i].OwnerID == ownerID {
			out = append(out, f.docs[i])
		}
	}
	return out, nil
}

func (f *fakeDocumentService) Delete(_ context.Context, documentID, ownerID string) error {
	if f.err != nil {
		return f.err
	}
	if _, err := f.Get(context.Background(), documentID, ownerID); err != nil {
		return err
	}
	return nil
}

// setupTestServices wires fake services and the owner flag, returning
// a cleanup that restores the previous state.
func setupTestServices() func() {
	oldIngest := ingestService
	oldSearch := searchService
	oldMemory := memoryService
	oldDocument := documentService
	oldOwner := ownerFlag

	ingestService = &fakeIngestService{
		result: &domain.IngestResult{
			DocumentID:    "doc-1",
			ChunksCreated: 3,
			TotalChunks:   3,
		},
	}
	searchService = &fakeSearchService{
		results: []domain.SearchResult{
			{ChunkID: "chunk-1", DocumentID: "doc-1", Content: "The onboarding checklist lives in the wiki.", Similarity: 0.91},
			{ChunkID: "chunk-2", DocumentID: "doc-2", Content: "Expense reports are due monthly.", Similarity: 0.77},
		},
	}
	memoryService = &fakeMemoryService{
		savedID: "mem-1",
		results: []domain.MemoryResult{
			{MemoryID: "mem-1", ContactID: "alice", Content: "Prefers email over calls.", MemoryType: "preference", Similarity: 0.88},
		},
	}
	documentService = &fakeDocumentService{
		docs: []domain.Document{
			{ID: "doc-1", OwnerID: "owner-1", Title: "Test Document 1", Source: domain.SourceManual},
			{ID: "doc-2", OwnerID: "owner-1", Title: "Test Document 2", Source: domain.SourceUpload, Filename: "report.pdf"},
		},
	}
	ownerFlag = "owner-1"

	return func() {
		ingestService = oldIngest
		searchService = oldSearch
		memoryService = oldMemory
		documentService = oldDocument
		ownerFlag = oldOwner
	}
}

// failingSearchService always errors.
type failingSearchService struct{}

func (failingSearchService) Search(context.Context, string, domain.SearchOptions) ([]domain.SearchResult, error) {
	return nil, fmt.Errorf("backend unavailable")
}
