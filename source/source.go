// Package source defines the domain models and interfaces for stock-footage discovery and retrieval.
package source

// Source defines the required capabilities of a stock-footage provider adapter.
//
// The set of implementations is deliberately closed: there are exactly two
// supported providers, and adding a third is a reviewed extension rather than
// a runtime registration.
type Source interface {
	// Name returns the unique identifier for the provider.
	Name() string

	// License returns the fixed label for the provider's license terms.
	License() string

	// Available reports whether a credential is configured for the provider.
	// An unavailable source is skipped silently during aggregation.
	Available() bool

	// Search pages through the provider's search API and returns at most
	// limit records whose chosen variant is at least minWidth pixels wide.
	// A missing credential yields an empty result, not an error.
	Search(keyword string, limit, minWidth int) ([]*Video, error)
}
