package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Catalog Errors.

	// ErrCatalogLoad indicates the catalog resource could not be read or parsed.
	// A failed load never yields a partial catalog.
	ErrCatalogLoad = errors.New("catalog load failed")

	// ErrNotAList indicates the catalog document root is not a JSON array.
	ErrNotAList = errors.New("catalog must be a list of templates")

	// ErrStyleNotFound indicates no catalog entry carries the requested name.
	ErrStyleNotFound = errors.New("style not found")

	// ErrMalformedEntry indicates a catalog entry is missing its name or prompt.
	ErrMalformedEntry = errors.New("invalid template: missing 'name' or 'prompt' field")
)

// IsCatalogLoadError reports whether err is one of the load-time catalog failures.
func IsCatalogLoadError(err error) bool {
	return errors.Is(err, ErrCatalogLoad) || errors.Is(err, ErrNotAList)
}
