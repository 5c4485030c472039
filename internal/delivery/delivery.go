// Package delivery defines the long-running servers started by the commands.
package delivery

import "context"

// Delivery is a server that blocks in Serve until it is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
