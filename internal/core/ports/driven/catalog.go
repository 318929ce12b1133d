package driven

import "github.com/custodia-labs/style-selector/internal/core/domain"

// CatalogStore reads the style catalog document.
type CatalogStore interface {
	// Load reads and parses the whole catalog.
	// Any failure aborts the load; no partial catalog is returned.
	Load() (*domain.Catalog, error)

	// Path returns the location of the catalog document.
	Path() string
}

// Chooser draws uniformly distributed indexes for random style selection.
type Chooser interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}
