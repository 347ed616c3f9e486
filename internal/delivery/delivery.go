// Package delivery defines the entry points that expose the user service.
package delivery

import "context"

// Delivery is a long-running surface started by the application, such as the
// HTTP server or the console menu.
type Delivery interface {
	Serve(ctx context.Context) error
}
