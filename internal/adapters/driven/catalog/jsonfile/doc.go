// Package jsonfile provides the JSON-file implementation of driven.CatalogStore.
//
// The catalog document is a JSON array of objects with the keys "name"
// (string, required), "prompt" (string, required, contains "{prompt}") and
// "negative_prompt" (string, optional). Field presence is preserved per
// entry so that the name listing and the style lookup can validate
// differently.
//
// Watcher reloads the catalog when the file changes on disk.
package jsonfile
