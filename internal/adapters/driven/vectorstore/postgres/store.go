// Package postgres provides a VectorStore adapter backed by PostgreSQL
// with the pgvector extension. Cosine similarity ranking is pushed down
// to the database via the <=> distance operator.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pgvector/pgvector-go"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Config holds configuration for the postgres vector store.
type Config struct {
	// DSN is the PostgreSQL connection string (required).
	DSN string

	// Dimensions is the vector column width
	// (default: domain.EmbeddingDimensions).
	Dimensions int
}

// Store persists chunks and memories in PostgreSQL/pgvector.
type Store struct {
	db         *sql.DB
	dimensions int
}

// NewStore opens a connection and ensures the schema exists.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres: DSN is required")
	}
	if cfg.Dimensions == 0 {
		cfg.Dimensions = domain.EmbeddingDimensions
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{db: db, dimensions: cfg.Dimensions}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	return s, nil
}

// ensureSchema creates the pgvector extension and tables if missing.
func (s *Store) ensureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS chunks (
			id TEXT PRIMARY KEY,
			document_id TEXT NOT NULL,
			owner_id TEXT NOT NULL,
			scope TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL,
			position INTEGER NOT NULL,
			embedding vector(%d) NOT NULL,
			word_count INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, s.dimensions),
		`CREATE INDEX IF NOT EXISTS chunks_document_idx ON chunks (document_id)`,
		`CREATE INDEX IF NOT EXISTS chunks_owner_idx ON chunks (owner_id)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS memories (
			id TEXT PRIMARY KEY,
			contact_id TEXT NOT NULL,
			owner_id TEXT NOT NULL,
			scope TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL,
			memory_type TEXT NOT NULL,
			metadata JSONB,
			embedding vector(%d) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, s.dimensions),
		`CREATE INDEX IF NOT EXISTS memories_contact_idx ON memories (owner_id, contact_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:30], err)
		}
	}

	return nil
}

// InsertChunk persists one chunk with its embedding.
func (s *Store) InsertChunk(ctx context.Context, chunk *domain.Chunk) error {
	if len(chunk.Embedding) != s.dimensions {
		return fmt.Errorf("%w: expected %d dimensions, got %d", domain.ErrVectorDimension, s.dimensions, len(chunk.Embedding))
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chunks (id, document_id, owner_id, scope, content, position, embedding, word_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, chunk.ID, chunk.DocumentID, chunk.OwnerID, chunk.Scope,
		chunk.Content, chunk.Position, pgvector.NewVector(chunk.Embedding), chunk.WordCount)

	if err != nil {
		return fmt.Errorf("inserting chunk: %w", err)
	}
	return nil
}

// DeleteChunksByDocument removes all chunks of a document.
func (s *Store) DeleteChunksByDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM chunks WHERE document_id = $1`, documentID)
	if err != nil {
		return fmt.Errorf("deleting chunks: %w", err)
	}
	return nil
}

// SimilaritySearch returns chunks ranked by cosine similarity
// descending. The threshold is an inclusive lower bound; an empty
// filter scope matches rows of every scope.
func (s *Store) SimilaritySearch(ctx context.Context, query []float32, filter driven.Filter) ([]driven.ChunkHit, error) {
	vec := pgvector.NewVector(query)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, content, 1 - (embedding <=> $1) AS similarity
		FROM chunks
		WHERE owner_id = $2
		  AND ($3 = '' OR scope = $3)
		  AND 1 - (embedding <=> $1) >= $4
		ORDER BY embedding <=> $1
		LIMIT $5
	`, vec, filter.OwnerID, filter.Scope, filter.Threshold, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var hits []driven.ChunkHit //nolint:prealloc // size unknown from query
	for rows.Next() {
		var hit driven.ChunkHit
		if err := rows.Scan(&hit.ChunkID, &hit.DocumentID, &hit.Content, &hit.Similarity); err != nil {
			return nil, fmt.Errorf("scanning chunk hit: %w", err)
		}
		hits = append(hits, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunk hits: %w", err)
	}

	return hits, nil
}

// InsertMemory persists one contact memory with its embedding.
func (s *Store) InsertMemory(ctx context.Context, memory *domain.Memory) error {
	if len(memory.Embedding) != s.dimensions {
		return fmt.Errorf("%w: expected %d dimensions, got %d", domain.ErrVectorDimension, s.dimensions, len(memory.Embedding))
	}

	metadataJSON, err := json.Marshal(memory.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO memories (id, contact_id, owner_id, scope, content, memory_type, metadata, embedding)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, memory.ID, memory.ContactID, memory.OwnerID, memory.Scope,
		memory.Content, memory.MemoryType, metadataJSON, pgvector.NewVector(memory.Embedding))

	if err != nil {
		return fmt.Errorf("inserting memory: %w", err)
	}
	return nil
}

// SimilaritySearchByContact returns memories for one contact ranked by
// cosine similarity descending.
func (s *Store) SimilaritySearchByContact(ctx context.Context, query []float32, contactID string, filter driven.Filter) ([]driven.MemoryHit, error) {
	vec := pgvector.NewVector(query)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, contact_id, content, memory_type, 1 - (embedding <=> $1) AS similarity
		FROM memories
		WHERE owner_id = $2
		  AND contact_id = $3
		  AND ($4 = '' OR scope = $4)
		  AND 1 - (embedding <=> $1) >= $5
		ORDER BY embedding <=> $1
		LIMIT $6
	`, vec, filter.OwnerID, contactID, filter.Scope, filter.Threshold, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("querying memories: %w", err)
	}
	defer rows.Close()

	var hits []driven.MemoryHit //nolint:prealloc // size unknown from query
	for rows.Next() {
		var hit driven.MemoryHit
		if err := rows.Scan(&hit.MemoryID, &hit.ContactID, &hit.Content, &hit.MemoryType, &hit.Similarity); err != nil {
			return nil, fmt.Errorf("scanning memory hit: %w", err)
		}
		hits = append(hits, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating memory hits: %w", err)
	}

	return hits, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
