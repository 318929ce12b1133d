// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO.
// Resolution is synchronous and performs no I/O: the catalog is read
// once by CatalogService and every batch works on an immutable snapshot.
package services
