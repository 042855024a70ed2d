// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the research core

package interfaces

// Dependencies holds all external dependencies required by the core
// business logic.
type Dependencies struct {
	// Cache stores aggregated responses
	Cache Cache

	// HTTPClient performs outbound requests for adapters and fetcher
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
