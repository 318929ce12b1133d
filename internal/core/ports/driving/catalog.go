package driving

import "github.com/custodia-labs/style-selector/internal/core/domain"

// CatalogService gives access to the loaded style catalog.
type CatalogService interface {
	// Names returns all style names sorted ascending.
	Names() []string

	// Lookup returns the style with the given name.
	// Fails with domain.ErrStyleNotFound or domain.ErrMalformedEntry.
	Lookup(name string) (domain.Style, error)

	// Catalog returns the current catalog snapshot.
	Catalog() *domain.Catalog

	// Reload re-reads the catalog. On failure the current catalog is kept.
	Reload() error
}
