// ABOUTME: Dependencies container provides dependency injection for library components
// ABOUTME: Defines the contract for dependencies shared by the client-facing layers

package interfaces

// Dependencies holds all external dependencies shared by the library's
// client-facing layers
type Dependencies struct {
	// Cache provides caching functionality
	Cache Cache

	// Transport provides mutating REST calls against the platform API
	Transport Transport

	// Logger provides structured logging
	Logger Logger
}
