// Package delivery contains the transports exposing the use cases.
package delivery

import "context"

// Delivery is a long-running transport started by the fx application.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
