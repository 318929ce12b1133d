package jsonfile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/style-selector/internal/core/domain"
	"github.com/custodia-labs/style-selector/internal/core/ports/driven"
)

// DefaultFileName is the catalog file name inside the config directory.
const DefaultFileName = "sdxl_styles.json"

// defaultCatalog is written to the default location on first use.
//
//go:embed defaults/sdxl_styles.json
var defaultCatalog []byte

// Ensure Store implements the interface.
var _ driven.CatalogStore = (*Store)(nil)

// Store reads the catalog from a JSON file.
//
// When created without an explicit path, the store uses
// ~/.styleselector/sdxl_styles.json and seeds it from the embedded default
// catalog the first time Load is called. An explicit path is never created.
type Store struct {
	path string
	seed bool

	seedOnce sync.Once
	seedErr  error
}

// NewStore creates a catalog store for path.
// If path is empty, defaults to ~/.styleselector/sdxl_styles.json.
func NewStore(path string) (*Store, error) {
	if path != "" {
		return &Store{path: path}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home directory: %w", err)
	}
	return NewDefaultStore(filepath.Join(home, ".styleselector")), nil
}

// NewDefaultStore creates a store for the default catalog file in dir,
// seeding it from the embedded catalog when missing.
func NewDefaultStore(dir string) *Store {
	return &Store{
		path: filepath.Join(dir, DefaultFileName),
		seed: true,
	}
}

// Load reads and parses the catalog file.
func (s *Store) Load() (*domain.Catalog, error) {
	if s.seed {
		s.seedOnce.Do(s.writeDefaults)
		if s.seedErr != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCatalogLoad, s.seedErr)
		}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogLoad, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return catalog, nil
}

// Path returns the catalog file path.
func (s *Store) Path() string {
	return s.path
}

// writeDefaults creates the catalog file from the embedded default
// (only if it doesn't exist).
func (s *Store) writeDefaults() {
	if _, err := os.Stat(s.path); err == nil || !errors.Is(err, os.ErrNotExist) {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		s.seedErr = fmt.Errorf("create catalog directory: %w", err)
		return
	}
	if err := os.WriteFile(s.path, defaultCatalog, 0600); err != nil {
		s.seedErr = fmt.Errorf("write default catalog: %w", err)
	}
}

// DefaultCatalog parses the embedded default catalog.
func DefaultCatalog() (*domain.Catalog, error) {
	return Parse(defaultCatalog)
}
