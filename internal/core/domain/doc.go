// Package domain defines the core business entities for quotesbook.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Quote: a stored line of text with its store-assigned identifier
//   - Kind: the closed set of failure categories an operation can end in
//   - Style: how a quote is rendered when streamed to the user
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
