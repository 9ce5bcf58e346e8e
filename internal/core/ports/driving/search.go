package driving

import (
	"context"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
)

// SearchService answers knowledge base queries with similarity-ranked
// chunks, optionally reordered by a language model.
type SearchService interface {
	// Search embeds the query and returns ranked results for the owner
	// in opts. It returns a (possibly empty) ranked list or an explicit
	// error - never stale or wrong-tenant data.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
