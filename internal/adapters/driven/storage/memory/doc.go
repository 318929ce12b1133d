// Package memory provides in-memory implementations of driven port interfaces.
// They back the core service tests and the --ephemeral mode of the CLI.
package memory
