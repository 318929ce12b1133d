package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/style-selector/internal/core/domain"
)

func TestCatalogStore_Load(t *testing.T) {
	store := NewCatalogStoreFromStyles(
		domain.Style{Name: "vivid", Prompt: "vivid, {prompt}", NegativePrompt: "dull"},
		domain.Style{Name: "base", Prompt: "{prompt}"},
	)

	catalog, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"base", "vivid"}, catalog.Names())
	assert.Equal(t, ":memory:", store.Path())
}

func TestCatalogStore_SetEntriesAndError(t *testing.T) {
	store := NewCatalogStore()

	store.SetEntries(domain.CatalogEntry{Name: "draft", HasName: true})
	catalog, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"draft"}, catalog.Names())

	loadErr := errors.New("disk gone")
	store.SetError(loadErr)
	_, err = store.Load()
	assert.ErrorIs(t, err, loadErr)

	store.SetError(nil)
	_, err = store.Load()
	assert.NoError(t, err)
}
