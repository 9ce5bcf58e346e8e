// Package config loads Lexikon configuration from a TOML file with
// environment variable overrides for secrets and connection strings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
)

// Environment variables that override file values. Secrets should be
// provided this way rather than written into config.toml.
const (
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvPostgresDSN  = "LEXIKON_POSTGRES_DSN"
	EnvDataDir      = "LEXIKON_DATA_DIR"
)

// Config is the top-level Lexikon configuration.
type Config struct {
	DataDir   string          `toml:"data_dir"`
	Embedding EmbeddingConfig `toml:"embedding"`
	LLM       LLMConfig       `toml:"llm"`
	Vector    VectorConfig    `toml:"vector"`
	Storage   StorageConfig   `toml:"storage"`
	Ingest    IngestConfig    `toml:"ingest"`
}

// EmbeddingConfig configures the embedding provider.
type EmbeddingConfig struct {
	APIKey            string  `toml:"api_key"`
	BaseURL           string  `toml:"base_url"`
	Model             string  `toml:"model"`
	Dimensions        int     `toml:"dimensions"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// LLMConfig configures the chat completion provider used for
// reranking and file text extraction.
type LLMConfig struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// VectorConfig selects and configures the vector store backend.
type VectorConfig struct {
	// Driver is "postgres" or "memory".
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

// StorageConfig configures uploaded file storage.
type StorageConfig struct {
	// UploadDir is the root directory for uploaded files.
	UploadDir string `toml:"upload_dir"`
}

// IngestConfig tunes the ingestion pipeline.
type IngestConfig struct {
	MaxChunkWords    int `toml:"max_chunk_words"`
	OverlapWords     int `toml:"overlap_words"`
	ChunkConcurrency int `toml:"chunk_concurrency"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Embedding: EmbeddingConfig{
			Model:          "text-embedding-3-small",
			Dimensions:     domain.EmbeddingDimensions,
			TimeoutSeconds: 30,
		},
		LLM: LLMConfig{
			Model:          "gpt-4o-mini",
			TimeoutSeconds: 60,
		},
		Vector: VectorConfig{
			Driver: "memory",
		},
		Ingest: IngestConfig{
			MaxChunkWords: 500,
			OverlapWords:  50,
		},
	}
}

// Load reads configuration from path, falling back to defaults when
// the file does not exist, then applies environment overrides.
// If path is empty, ~/.lexikon/config.toml is used.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".lexikon", "config.toml")
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file yet - defaults plus env are enough
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvOpenAIAPIKey); v != "" {
		if c.Embedding.APIKey == "" {
			c.Embedding.APIKey = v
		}
		if c.LLM.APIKey == "" {
			c.LLM.APIKey = v
		}
	}
	if v := os.Getenv(EnvPostgresDSN); v != "" {
		c.Vector.DSN = v
		c.Vector.Driver = "postgres"
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
}

// EmbeddingTimeout returns the embedding request timeout.
func (c *Config) EmbeddingTimeout() time.Duration {
	return time.Duration(c.Embedding.TimeoutSeconds) * time.Second
}

// LLMTimeout returns the completion request timeout.
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLM.TimeoutSeconds) * time.Second
}
