// Package domain defines the core entities of the papers client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Paper: A paper returned by the search backend
//   - Answer: A generated answer with its cited sources
//   - Page: The presentation state of the search & ask page
//   - Labels: The user-visible texts of the page
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
