package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
)

var (
	searchLimit     int
	searchThreshold float64
	searchScope     string
	searchRerank    bool
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the knowledge base",
	Long: `Embeds the query and returns chunks ranked by cosine similarity.
With --rerank, a language model reorders the top candidates by relevance.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultLimit, "maximum number of results")
	searchCmd.Flags().Float64Var(&searchThreshold, "threshold", domain.DefaultThreshold, "minimum similarity (0 to 1, inclusive)")
	searchCmd.Flags().StringVarP(&searchScope, "scope", "s", "", "restrict results to one logical agent")
	searchCmd.Flags().BoolVar(&searchRerank, "rerank", false, "rerank results with the language model")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	owner, err := requireOwner()
	if err != nil {
		return err
	}

	results, err := searchService.Search(cmd.Context(), args[0], domain.SearchOptions{
		OwnerID:   owner,
		Scope:     searchScope,
		Threshold: searchThreshold,
		Limit:     searchLimit,
		Rerank:    searchRerank,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %.2f  document %s\n", i+1, results[i].Similarity, results[i].DocumentID)
		cmd.Printf("      %s\n", snippet(results[i].Content, 160))
		cmd.Println()
	}

	return nil
}

// snippet truncates content to at most n runes for display.
func snippet(content string, n int) string {
	runes := []rune(content)
	if len(runes) <= n {
		return content
	}
	return string(runes[:n]) + "..."
}
