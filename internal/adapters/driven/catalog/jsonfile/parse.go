package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/style-selector/internal/core/domain"
)

// JSON keys of a catalog entry.
const (
	keyName           = "name"
	keyPrompt         = "prompt"
	keyNegativePrompt = "negative_prompt"
)

// Parse decodes a catalog document.
// A document that is not valid JSON fails with domain.ErrCatalogLoad, a
// valid document whose root is not an array fails with domain.ErrNotAList.
func Parse(data []byte) (*domain.Catalog, error) {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("invalid JSON: %w", domain.ErrCatalogLoad)
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.ErrNotAList
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w: %w", domain.ErrCatalogLoad, err)
	}

	entries := make([]domain.CatalogEntry, len(items))
	for i, item := range items {
		entries[i] = parseEntry(item)
	}

	return domain.NewCatalog(entries), nil
}

// parseEntry decodes one array element. Elements that are not objects yield
// an entry without fields. Only string values count as present.
func parseEntry(item json.RawMessage) domain.CatalogEntry {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
		return domain.CatalogEntry{}
	}

	var entry domain.CatalogEntry
	entry.Name, entry.HasName = stringField(obj, keyName)
	entry.Prompt, entry.HasPrompt = stringField(obj, keyPrompt)
	entry.NegativePrompt, _ = stringField(obj, keyNegativePrompt)
	return entry
}

func stringField(obj map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := obj[key]
	if !ok {
		return "", false
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}
