package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driving"
)

var (
	memoryContact   string
	memoryScope     string
	memoryType      string
	memoryLimit     int
	memoryThreshold float64
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Manage per-contact memories",
	Long:  `Save and recall free-text memories scoped to individual contacts.`,
}

var memorySaveCmd = &cobra.Command{
	Use:   "save [content]",
	Short: "Save a memory for a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemorySave,
}

var memorySearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Recall memories for a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemorySearch,
}

func init() {
	memoryCmd.PersistentFlags().StringVarP(&memoryContact, "contact", "c", "", "contact the memory belongs to (required)")
	memoryCmd.PersistentFlags().StringVarP(&memoryScope, "scope", "s", "", "bind the memory to one logical agent")
	memorySaveCmd.Flags().StringVar(&memoryType, "type", "", "memory type tag (e.g. preference, fact)")
	memorySearchCmd.Flags().IntVarP(&memoryLimit, "limit", "n", domain.DefaultLimit, "maximum number of results")
	memorySearchCmd.Flags().Float64Var(&memoryThreshold, "threshold", domain.DefaultThreshold, "minimum similarity (0 to 1, inclusive)")

	memoryCmd.AddCommand(memorySaveCmd)
	memoryCmd.AddCommand(memorySearchCmd)
	rootCmd.AddCommand(memoryCmd)
}

func runMemorySave(cmd *cobra.Command, args []string) error {
	if memoryService == nil {
		return errors.New("memory service not configured")
	}

	owner, err := requireOwner()
	if err != nil {
		return err
	}
	if memoryContact == "" {
		return errors.New("--contact is required")
	}

	id, err := memoryService.SaveMemory(cmd.Context(), driving.SaveMemoryInput{
		ContactID:  memoryContact,
		Content:    args[0],
		OwnerID:    owner,
		Scope:      memoryScope,
		MemoryType: memoryType,
	})
	if err != nil {
		return fmt.Errorf("saving memory failed: %w", err)
	}

	cmd.Printf("Memory %s saved for contact %s.\n", id, memoryContact)
	return nil
}

func runMemorySearch(cmd *cobra.Command, args []string) error {
	if memoryService == nil {
		return errors.New("memory service not configured")
	}

	owner, err := requireOwner()
	if err != nil {
		return err
	}
	if memoryContact == "" {
		return errors.New("--contact is required")
	}

	results, err := memoryService.SearchMemories(cmd.Context(), memoryContact, args[0], domain.MemorySearchOptions{
		OwnerID:   owner,
		Scope:     memoryScope,
		Threshold: memoryThreshold,
		Limit:     memoryLimit,
	})
	if err != nil {
		return fmt.Errorf("memory search failed: %w", err)
	}

	if len(results) == 0 {
		cmd.Println("No memories found.")
		return nil
	}

	cmd.Printf("Memories for %s:\n\n", memoryContact)
	for i := range results {
		cmd.Printf("  [%d] %.2f", i+1, results[i].Similarity)
		if results[i].MemoryType != "" {
			cmd.Printf("  (%s)", results[i].MemoryType)
		}
		cmd.Println()
		cmd.Printf("      %s\n", results[i].Content)
		cmd.Println()
	}

	return nil
}
