package cart

import "context"

// Store persists carts between requests, keyed by an opaque session ID.
// Contents survive reloads of the storefront but are not synchronized
// across devices.
type Store interface {
	// Get loads the cart for a session, returning an empty cart when
	// none exists yet
	Get(ctx context.Context, sessionID string) (*Cart, error)

	// Save persists the cart for a session
	Save(ctx context.Context, sessionID string, cart *Cart) error

	// Delete discards the cart for a session
	Delete(ctx context.Context, sessionID string) error
}
