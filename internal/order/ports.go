package order

import (
	"context"

	"github.com/Hudesid/Only-Book/internal/book"
)

// BookReader is the read-only catalog access the validator needs.
type BookReader interface {
	GetByID(ctx context.Context, id string) (book.Book, error)
}

// Repository defines the contract for order persistence.
type Repository interface {
	// Create persists the order and its items in one transaction and
	// decrements stock for every line. It fails with
	// *InsufficientStockError if any decrement would drive stock negative.
	Create(ctx context.Context, o *Order) error
	List(ctx context.Context) ([]Order, error)
}
