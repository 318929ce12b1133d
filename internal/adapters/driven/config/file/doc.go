// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: reads plugin options from a TOML file
package file
