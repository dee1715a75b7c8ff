// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a long-running transport (e.g., the HTTP server) started by the
// application bootstrap.
type Delivery interface {
	Serve(ctx context.Context) error
}
