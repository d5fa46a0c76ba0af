// Package shutdown provides graceful shutdown for the forums server.
//
// This package handles process termination signals:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Timeout-based forced shutdown
//   - Cleanup callback registration
//   - Shutdown coordination
//
// Usage:
//
//	h := shutdown.NewHandler(10 * time.Second)
//	h.OnShutdown(srv.Stop)
//	return h.Wait() // Blocks until a signal arrives, then runs hooks
package shutdown
