// Package domain defines the core types of the style selector.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Style: A named prompt template with an optional negative fragment
//   - Catalog: The immutable, ordered collection of catalog entries
//   - ResolutionRequest / ResolutionResult: One batch resolution pass
//   - GenerationRequest: The host's per-request prompt batch
//   - Panel: A description of the settings controls offered to the host
//   - GenerationRecord: An audit entry for a resolved batch
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
