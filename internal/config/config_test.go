package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)
	assert.Equal(t, domain.EmbeddingDimensions, cfg.Embedding.Dimensions)
	assert.Equal(t, "memory", cfg.Vector.Driver)
	assert.Equal(t, 500, cfg.Ingest.MaxChunkWords)
	assert.Equal(t, 50, cfg.Ingest.OverlapWords)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir = "/tmp/lexikon"

[embedding]
model = "text-embedding-3-large"
dimensions = 768

[vector]
driver = "postgres"
dsn = "postgres://localhost/lexikon"

[ingest]
max_chunk_words = 300
`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/lexikon", cfg.DataDir)
	assert.Equal(t, "text-embedding-3-large", cfg.Embedding.Model)
	assert.Equal(t, "postgres", cfg.Vector.Driver)
	assert.Equal(t, "postgres://localhost/lexikon", cfg.Vector.DSN)
	assert.Equal(t, 300, cfg.Ingest.MaxChunkWords)
	// Unset sections keep their defaults.
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "sk-test")
	t.Setenv(EnvPostgresDSN, "postgres://env/lexikon")
	t.Setenv(EnvDataDir, "/data/lexikon")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.Embedding.APIKey)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "postgres", cfg.Vector.Driver)
	assert.Equal(t, "postgres://env/lexikon", cfg.Vector.DSN)
	assert.Equal(t, "/data/lexikon", cfg.DataDir)
}

func TestLoad_FileAPIKeyWinsOverEnv(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "sk-env")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[embedding]
api_key = "sk-file"
`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-file", cfg.Embedding.APIKey)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
}
