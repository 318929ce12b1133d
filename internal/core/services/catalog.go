package services

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/custodia-labs/style-selector/internal/core/domain"
	"github.com/custodia-labs/style-selector/internal/core/ports/driven"
	"github.com/custodia-labs/style-selector/internal/core/ports/driving"
	"github.com/custodia-labs/style-selector/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService owns the style catalog for the lifetime of the plugin.
// The catalog is loaded once and replaced wholesale on Reload, so readers
// always see a complete snapshot.
type CatalogService struct {
	store   driven.CatalogStore
	current atomic.Pointer[domain.Catalog]
}

// NewCatalogService creates a catalog service with an empty catalog.
// Call Load before use.
func NewCatalogService(store driven.CatalogStore) *CatalogService {
	s := &CatalogService{store: store}
	s.current.Store(domain.EmptyCatalog())
	return s
}

// Load reads the catalog from the store.
// On failure the catalog is left empty and the error is returned.
func (s *CatalogService) Load() error {
	catalog, err := s.read()
	if err != nil {
		s.current.Store(domain.EmptyCatalog())
		logger.Error("load style catalog: %v", err)
		return err
	}
	s.current.Store(catalog)
	logger.Info("loaded %d styles from %s", catalog.Len(), s.store.Path())
	return nil
}

// Reload re-reads the catalog. On failure the current catalog is kept.
func (s *CatalogService) Reload() error {
	catalog, err := s.read()
	if err != nil {
		logger.Error("reload style catalog: %v", err)
		return err
	}
	s.current.Store(catalog)
	logger.Info("reloaded %d styles from %s", catalog.Len(), s.store.Path())
	return nil
}

// Catalog returns the current catalog snapshot.
func (s *CatalogService) Catalog() *domain.Catalog {
	return s.current.Load()
}

// Names returns all style names sorted ascending.
func (s *CatalogService) Names() []string {
	return s.Catalog().Names()
}

// Lookup returns the style with the given name.
func (s *CatalogService) Lookup(name string) (domain.Style, error) {
	return s.Catalog().Lookup(name)
}

// Path returns the catalog location.
func (s *CatalogService) Path() string {
	if s.store == nil {
		return ""
	}
	return s.store.Path()
}

func (s *CatalogService) read() (*domain.Catalog, error) {
	if s.store == nil {
		return nil, fmt.Errorf("no catalog store configured: %w", domain.ErrCatalogLoad)
	}
	catalog, err := s.store.Load()
	if err != nil {
		if !domain.IsCatalogLoadError(err) {
			err = errors.Join(domain.ErrCatalogLoad, err)
		}
		return nil, err
	}
	if catalog == nil {
		return domain.EmptyCatalog(), nil
	}
	return catalog, nil
}
