// Package store provides an interface for order storage operations.
package store

import (
	"context"
	"time"
)

// Order is a customer's purchase record tracked through a status lifecycle.
type Order struct {
	ID        string
	Name      string
	Phone     string
	Items     string
	Status    string
	CreatedAt time.Time
}

// CreateOrderParams holds the fields required to insert a new order.
type CreateOrderParams struct {
	ID     string
	Name   string
	Phone  string
	Items  string
	Status string
}

// OrderStore is an interface for order storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type OrderStore interface {
	// ListAll returns every order in insertion order.
	// Returns an empty slice if no orders exist.
	ListAll(ctx context.Context) ([]Order, error)

	// FindByID retrieves a single order by its unique identifier.
	// Returns ErrOrderNotFound if no order exists with the given ID.
	FindByID(ctx context.Context, id string) (*Order, error)

	// SetStatus updates the status field of the order matching id and returns the updated row.
	// Returns ErrOrderNotFound if no order exists with the given ID; the store is left unchanged.
	SetStatus(ctx context.Context, id string, status string) (*Order, error)

	// Create adds a new order to the system.
	// Returns ErrDuplicateOrderID if an order with the same id already exists.
	Create(ctx context.Context, params CreateOrderParams) (*Order, error)

	// Seed bulk-inserts the given orders, skipping ids that are already present.
	// Safe to call on every startup.
	Seed(ctx context.Context, orders []CreateOrderParams) error

	// ClearAll removes every order. Reserved for tests and resets; never routed to end users.
	ClearAll(ctx context.Context) error
}
