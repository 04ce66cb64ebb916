// Package dashboard provides the demo data used by the dashboard front-end while
// real integrations are not available. Every accessor waits a fixed simulated
// latency and then returns a freshly built copy of a static dataset.
package dashboard

import "errors"

// Sentinel errors for dashboard use case operations.
var (
	// ErrProgramNotFound indicates that no clinical program has the requested slug.
	ErrProgramNotFound = errors.New("program not found")
)
