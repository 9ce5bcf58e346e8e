// Package local provides filesystem-backed file storage. Uploaded
// files are addressed by a path relative to a configured root.
package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexikon-ai/lexikon/internal/core/domain"
	"github.com/lexikon-ai/lexikon/internal/core/ports/driven"
)

// Ensure Storage implements the interface.
var _ driven.FileStorage = (*Storage)(nil)

// Storage reads files from a root directory.
type Storage struct {
	root string
}

// NewStorage creates file storage rooted at dir.
func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("local storage: root directory is required")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving root directory: %w", err)
	}

	return &Storage{root: abs}, nil
}

// Download returns the bytes stored at path. The path is resolved
// relative to the root; paths escaping the root are rejected.
func (s *Storage) Download(_ context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: storage path is required", domain.ErrInvalidInput)
	}

	full := filepath.Join(s.root, filepath.Clean("/"+path))
	if !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: storage path escapes root", domain.ErrInvalidInput)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return data, nil
}
