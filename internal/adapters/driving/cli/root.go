// Package cli implements the lexikon command line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lexikon-ai/lexikon/internal/adapters/driven/embedding/openai"
	"github.com/lexikon-ai/lexikon/internal/adapters/driven/extraction/vision"
	"github.com/lexikon-ai/lexikon/internal/adapters/driven/filestore/local"
	llmopenai "github.com/lexikon-ai/lexikon/internal/adapters/driven/llm/openai"
	"github.com/lexikon-ai/lexikon/internal/adapters/driven/storage/sqlite"
	vectormem "github.com/lexikon-ai/lexikon/internal/adapters/driven/vectorstore/memory"
	vectorpg "github.com/lexikon-ai/lexikon/internal/adapters/driven/vectorstore/postgres"
	"github.com/lexikon-ai/lexikon/internal/chunker"
	"github.com/lexikon-ai/lexikon/internal/config"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driving"
	"github.com/lexikon-ai/lexikon/internal/core/services"
	"github.com/lexikon-ai/lexikon/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	configPath string
	verbose    bool
	ownerFlag  string
)

// Services wired by initServices. Commands nil-check the service they
// need so tests can run commands without full wiring.
var (
	ingestService   driving.IngestService
	searchService   driving.SearchService
	memoryService   driving.MemoryService
	documentService driving.DocumentService
)

// closers holds adapters that need shutdown after a command run.
var closers []io.Closer

var rootCmd = &cobra.Command{
	Use:   "lexikon",
	Short: "Knowledge base engine for AI agents",
	Long: `Lexikon ingests documents into an embedded knowledge base and answers
semantic queries over it. Documents are chunked, embedded, and indexed;
searches rank chunks by cosine similarity with optional LLM reranking.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		// version and help need no backing services
		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}

		return initServices(cmd.Context())
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		shutdown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.lexikon/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&ownerFlag, "owner", "", "tenant identity for all operations")
}

// Execute runs the root command.
func Execute() error {
	// Secrets may live in a local .env during development.
	_ = godotenv.Load()

	return rootCmd.Execute()
}

// initServices wires adapters and services from configuration.
// Already-wired services (e.g. injected by tests) are left alone.
func initServices(ctx context.Context) error {
	if ingestService != nil || searchService != nil {
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening metadata store: %w", err)
	}
	closers = append(closers, store)
	docStore := store.DocumentStore()

	vectorStore, err := newVectorStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening vector store: %w", err)
	}
	closers = append(closers, vectorStore)

	var embedder driven.EmbeddingService
	if cfg.Embedding.APIKey != "" {
		embedder, err = openai.NewEmbeddingService(openai.Config{
			APIKey:            cfg.Embedding.APIKey,
			BaseURL:           cfg.Embedding.BaseURL,
			Model:             cfg.Embedding.Model,
			Dimensions:        cfg.Embedding.Dimensions,
			Timeout:           cfg.EmbeddingTimeout(),
			RequestsPerSecond: cfg.Embedding.RequestsPerSecond,
		})
		if err != nil {
			return fmt.Errorf("creating embedding service: %w", err)
		}
	} else {
		logger.Warn("No embedding API key configured; ingestion and search are disabled")
	}

	var llm driven.LLMService
	var extractor driven.TextExtractor
	if cfg.LLM.APIKey != "" {
		llm, err = llmopenai.NewLLMService(llmopenai.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLMTimeout(),
		})
		if err != nil {
			return fmt.Errorf("creating llm service: %w", err)
		}
		extractor = vision.New(llm)
	}

	var fileStore driven.FileStorage
	if cfg.Storage.UploadDir != "" {
		fileStore, err = local.NewStorage(cfg.Storage.UploadDir)
		if err != nil {
			return fmt.Errorf("creating file storage: %w", err)
		}
	}

	splitter := chunker.New(
		chunker.WithMaxWords(cfg.Ingest.MaxChunkWords),
		chunker.WithOverlapWords(cfg.Ingest.OverlapWords),
	)

	ingestOpts := []services.IngestOption{services.WithSplitter(splitter)}
	if cfg.Ingest.ChunkConcurrency > 0 {
		ingestOpts = append(ingestOpts, services.WithChunkConcurrency(cfg.Ingest.ChunkConcurrency))
	}

	ingestService = services.NewIngestService(docStore, vectorStore, embedder, extractor, fileStore, ingestOpts...)
	searchService = services.NewSearchService(vectorStore, embedder, llm)
	memoryService = services.NewMemoryService(vectorStore, embedder)
	documentService = services.NewDocumentService(docStore, vectorStore)

	return nil
}

// newVectorStore selects the vector store backend from config.
func newVectorStore(ctx context.Context, cfg *config.Config) (driven.VectorStore, error) {
	switch cfg.Vector.Driver {
	case "postgres":
		return vectorpg.NewStore(ctx, vectorpg.Config{
			DSN:        cfg.Vector.DSN,
			Dimensions: cfg.Embedding.Dimensions,
		})
	case "", "memory":
		logger.Debug("Using in-memory vector store; data will not persist")
		return vectormem.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown vector driver %q", cfg.Vector.Driver)
	}
}

// shutdown closes wired adapters in reverse order.
func shutdown() {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			logger.Warn("Closing adapter: %v", err)
		}
	}
	closers = nil
}

// requireOwner returns the owner flag or an error when unset.
func requireOwner() (string, error) {
	if ownerFlag == "" {
		return "", fmt.Errorf("--owner is required")
	}
	return ownerFlag, nil
}
