// Package delivery defines the surfaces that expose the console to clients.
package delivery

import "context"

// Delivery is a long-running server started by the application.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
