package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
)

// --- Mock implementations of the driven ports ---

// mockEmbedder implements driven.EmbeddingService.
// failOn lists embed calls (1-based) that should fail.
type mockEmbedder struct {
	mu        sync.Mutex
	calls     int
	texts     []string
	embedding []float32
	embedErr  error
	failOn    map[int]bool
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.texts = append(m.texts, text)
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	if m.failOn[m.calls] {
		return nil, fmt.Errorf("%w: transient provider error", domain.ErrEmbeddingFailed)
	}
	if m.embedding != nil {
		return m.embedding, nil
	}
	return make([]float32, domain.EmbeddingDimensions), nil
}

func (m *mockEmbedder) Dimensions() int   { return domain.EmbeddingDimensions }
func (m *mockEmbedder) ModelName() string { return "mock-embedding" }
func (m *mockEmbedder) Close() error      { return nil }

// mockVectorStore implements driven.VectorStore with in-process state.
type mockVectorStore struct {
	mu       sync.Mutex
	chunks   []domain.Chunk
	memories []domain.Memory

	hits       []driven.ChunkHit
	memoryHits []driven.MemoryHit

	lastFilter  driven.Filter
	lastContact string

	insertChunkErr  error
	insertMemoryErr error
	searchErr       error
	deleteErr       error
	failChunkOn     map[int]bool
	insertCalls     int

	deletedDocs []string
}

func (m *mockVectorStore) InsertChunk(_ context.Context, chunk *domain.Chunk) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls++
	if m.insertChunkErr != nil {
		return m.insertChunkErr
	}
	if m.failChunkOn[m.insertCalls] {
		return fmt.Errorf("store rejected insert")
	}
	m.chunks = append(m.chunks, *chunk)
	return nil
}

func (m *mockVectorStore) DeleteChunksByDocument(_ context.Context, documentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedDocs = append(m.deletedDocs, documentID)
	kept := m.chunks[:0]
	for _, c := range m.chunks {
		if c.DocumentID != documentID {
			kept = append(kept, c)
		}
	}
	m.chunks = kept
	return nil
}

func (m *mockVectorStore) SimilaritySearch(_ context.Context, _ []float32, filter driven.Filter) ([]driven.ChunkHit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilter = filter
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if filter.Limit < len(m.hits) {
		return m.hits[:filter.Limit], nil
	}
	return m.hits, nil
}

func (m *mockVectorStore) InsertMemory(_ context.Context, memory *domain.Memory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertMemoryErr != nil {
		return m.insertMemoryErr
	}
	m.memories = append(m.memories, *memory)
	return nil
}

func (m *mockVectorStore) SimilaritySearchByContact(_ context.Context, _ []float32, contactID string, filter driven.Filter) ([]driven.MemoryHit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastContact = contactID
	m.lastFilter = filter
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if filter.Limit < len(m.memoryHits) {
		return m.memoryHits[:filter.Limit], nil
	}
	return m.memoryHits, nil
}

func (m *mockVectorStore) Close() error { return nil }

// mockDocStore implements driven.DocumentStore.
type mockDocStore struct {
	mu      sync.Mutex
	docs    map[string]domain.Document
	saveErr error
}

func newMockDocStore() *mockDocStore {
	return &mockDocStore{docs: make(map[string]domain.Document)}
}

func (m *mockDocStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.docs[doc.ID] = *doc
	return nil
}

func (m *mockDocStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

func (m *mockDocStore) ListDocuments(_ context.Context, ownerID string) ([]domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var docs []domain.Document
	for _, doc := range m.docs {
		if doc.OwnerID == ownerID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (m *mockDocStore) DeleteDocument(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	return nil
}

func (m *mockDocStore) Close() error { return nil }

// mockLLM implements driven.LLMService.
type mockLLM struct {
	response    string
	completeErr error
	calls       int
	lastPrompt  string
	lastSystem  string
}

func (m *mockLLM) Complete(_ context.Context, system, prompt string, _ driven.CompletionOptions) (string, error) {
	m.calls++
	m.lastSystem = system
	m.lastPrompt = prompt
	if m.completeErr != nil {
		return "", m.completeErr
	}
	return m.response, nil
}

func (m *mockLLM) CompleteWithFile(_ context.Context, system, prompt string, _ driven.InlineFile, _ driven.CompletionOptions) (string, error) {
	m.calls++
	m.lastSystem = system
	m.lastPrompt = prompt
	if m.completeErr != nil {
		return "", m.completeErr
	}
	return m.response, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }
func (m *mockLLM) Close() error      { return nil }

// mockExtractor implements driven.TextExtractor.
type mockExtractor struct {
	text       string
	extractErr error
	lastMIME   string
}

func (m *mockExtractor) Extract(_ context.Context, _ []byte, mimeType string) (string, error) {
	m.lastMIME = mimeType
	if m.extractErr != nil {
		return "", m.extractErr
	}
	return m.text, nil
}

// mockFileStore implements driven.FileStorage.
type mockFileStore struct {
	data        []byte
	downloadErr error
	lastPath    string
}

func (m *mockFileStore) Download(_ context.Context, path string) ([]byte, error) {
	m.lastPath = path
	if m.downloadErr != nil {
		return nil, m.downloadErr
	}
	return m.data, nil
}
