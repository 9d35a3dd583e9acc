package ordering

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAllNewestFirst returns all orders ordered by creation time
	// descending
	FindAllNewestFirst(ctx context.Context) ([]Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error

	// Count counts all orders
	Count(ctx context.Context) (int64, error)
}
