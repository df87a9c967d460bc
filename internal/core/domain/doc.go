// Package domain defines the core business entities for Tailor.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Resume: An uploaded resume document
//   - TailoredResume: A resume rewritten for a specific job posting
//   - Application: A tracked job application
//   - Session: The current identity and its credential
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
