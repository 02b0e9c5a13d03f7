// Package kernel provides the shared value objects of the drone fleet domain.
//
// The package includes:
//   - UUID: identifier of drones and medications, wrapping github.com/google/uuid
//   - Weight: a non-negative carry weight with summing and capacity comparison
//
// Both types are immutable and safe for concurrent use. Their zero values are
// rejected by Validate so that unconstructed identifiers never reach storage.
package kernel
