// Package core contains the contracts and error types for the chatkit
// client. It is free of infrastructure concerns and can be depended on
// without pulling in any concrete backend.
//
// The core package is organized into two sub-packages:
//
// - interfaces: Contracts for external dependencies (transport, cache, logger)
// - errors: Custom error types for classification and a cache miss sentinel
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Request handling logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "chatkit/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:     myCache,     // implements interfaces.Cache
//	    Transport: myTransport, // implements interfaces.Transport
//	    Logger:    myLogger,    // implements interfaces.Logger
//	}
//
//	// Send a request
//	resp, err := deps.Transport.Post(ctx, "/channels/123/messages", interfaces.RequestOptions{
//	    Body: []byte(`{"content":"hello"}`),
//	})
package core
