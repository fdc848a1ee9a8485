// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a long-running request front end (HTTP today). Implementations
// register an fx shutdown hook themselves; Serve blocks until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
