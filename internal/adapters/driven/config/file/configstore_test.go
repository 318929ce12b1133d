package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))
}

func TestNewConfigStore_MissingFile(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), store.Path())
	_, ok := store.Get("styleselector.styles_ui")
	assert.False(t, ok)

	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "reading must not create the file")
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	store, err := NewConfigStore("")
	if err != nil {
		t.Skipf("existing config unreadable: %v", err)
	}

	assert.Equal(t, filepath.Join(home, ".styleselector", ConfigFileName), store.Path())
}

func TestConfigStore_FlattensTables(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[styleselector]
styles_ui = "select-list"
enable_by_default = false

[other.nested]
depth = 2
`)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "select-list", store.GetString("styleselector.styles_ui"))
	assert.False(t, store.GetBool("styleselector.enable_by_default"))

	val, ok := store.Get("styleselector.enable_by_default")
	assert.True(t, ok)
	assert.Equal(t, false, val)

	depth, ok := store.Get("other.nested.depth")
	assert.True(t, ok)
	assert.Equal(t, int64(2), depth)
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[styleselector]
styles_ui = 3
enable_by_default = "yes"
`)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("styleselector.styles_ui"))
	assert.False(t, store.GetBool("styleselector.enable_by_default"))
	assert.Equal(t, "", store.GetString("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[styleselector\nstyles_ui = ")

	store, err := NewConfigStore(dir)

	assert.Nil(t, store)
	assert.Error(t, err)
}

func TestConfigStore_Reload(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[styleselector]\nstyles_ui = \"radio-buttons\"\n")
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	writeConfig(t, dir, "[styleselector]\nenable_by_default = true\n")
	require.NoError(t, store.Load())

	assert.Equal(t, "", store.GetString("styleselector.styles_ui"))
	assert.True(t, store.GetBool("styleselector.enable_by_default"))
}

func TestFlattenMap(t *testing.T) {
	in := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"e": true,
	}

	assert.Equal(t, map[string]any{
		"a.b":   1,
		"a.c.d": "x",
		"e":     true,
	}, flattenMap(in, ""))
}
