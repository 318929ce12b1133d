package domain

import (
	"fmt"
	"sort"
)

// CatalogEntry is one element of the catalog document as it was read.
// Field presence is tracked separately from the values so that listing
// and lookup can apply their own validation.
type CatalogEntry struct {
	Name           string
	Prompt         string
	NegativePrompt string

	// HasName is true when the element is an object with a string "name".
	HasName bool

	// HasPrompt is true when the element is an object with a "prompt" key.
	HasPrompt bool
}

// Valid returns true if the entry carries both required fields.
func (e CatalogEntry) Valid() bool {
	return e.HasName && e.HasPrompt
}

// Style converts the entry to a Style.
func (e CatalogEntry) Style() Style {
	return Style{
		Name:           e.Name,
		Prompt:         e.Prompt,
		NegativePrompt: e.NegativePrompt,
	}
}

// Catalog is the loaded collection of style templates.
// A Catalog is immutable once constructed and safe for concurrent use.
type Catalog struct {
	entries []CatalogEntry
	names   []string
}

// NewCatalog builds a catalog from entries in document order.
func NewCatalog(entries []CatalogEntry) *Catalog {
	c := &Catalog{
		entries: make([]CatalogEntry, len(entries)),
	}
	copy(c.entries, entries)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.HasName {
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	c.names = names

	return c
}

// EmptyCatalog returns a catalog without entries.
func EmptyCatalog() *Catalog {
	return NewCatalog(nil)
}

// Names returns the names of all entries that have one, sorted ascending.
// Entries without a prompt are still listed.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of listed names.
func (c *Catalog) Len() int {
	return len(c.names)
}

// NameAt returns the i-th name in sorted order, wrapping around the catalog.
func (c *Catalog) NameAt(i int) string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[i%len(c.names)]
}

// Entries returns the entries in document order.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup scans entries in document order for the first one named name.
//
// Every entry visited before the match must carry both a name and a prompt;
// the first one that does not fails the lookup with ErrMalformedEntry, even
// if a valid match appears later. A full scan without a match fails with
// ErrStyleNotFound.
func (c *Catalog) Lookup(name string) (Style, error) {
	for i, e := range c.entries {
		if !e.Valid() {
			return Style{}, fmt.Errorf("entry %d: %w", i, ErrMalformedEntry)
		}
		if e.Name == name {
			return e.Style(), nil
		}
	}
	return Style{}, fmt.Errorf("no template found with name %q: %w", name, ErrStyleNotFound)
}
