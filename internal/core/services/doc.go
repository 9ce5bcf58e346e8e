// Package services contains the core orchestration logic of the
// knowledge engine: ingestion (extract, chunk, embed, index), retrieval
// (embed, similarity search, optional rerank), contact memory, and
// ownership-checked document management.
package services
