// Package domain defines the core business entities for plansift.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Thought: One timestamped observation inside a plan file
//   - Plan: The filtered, sorted per-file aggregate of thoughts
//   - Aggregate: The directory/file/plan structure plus run metadata
//   - ShortRecord: The flattened (content, factors) projection
//   - FrequencyReport: Descending-count histograms over the projection
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
