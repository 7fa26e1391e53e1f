package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Hudesid/Only-Book/internal/book"
)

var (
	// ErrEmptyOrder is returned when a placement request carries no lines.
	ErrEmptyOrder = errors.New("no books specified for the order")
	// ErrInvalidQuantity is returned when a requested quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// BookNotFoundError reports which requested book does not exist.
type BookNotFoundError struct {
	BookID string
}

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("book with ID %s not found", e.BookID)
}

func (e *BookNotFoundError) Unwrap() error { return book.ErrNotFound }

// InsufficientStockError reports how many units were still available at
// the moment of the stock check.
type InsufficientStockError struct {
	BookID    string
	Title     string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s, only %d available", e.Title, e.Available)
}

// Line is one requested (book, quantity) pair.
type Line struct {
	BookID   string
	Quantity int
}

// PricedLine is a validated line with its resolved book and exact subtotal.
type PricedLine struct {
	Book     book.Book
	Quantity int
	Subtotal decimal.Decimal
}

// Item is a persisted order line. UnitPrice is the book price captured at
// placement time.
type Item struct {
	ID        string          `json:"id"`
	BookID    string          `json:"book_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal is computed from the captured unit price, never stored.
func (it Item) Subtotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// MarshalJSON adds the computed subtotal to the representation.
func (it Item) MarshalJSON() ([]byte, error) {
	type alias Item
	return json.Marshal(struct {
		alias
		Subtotal decimal.Decimal `json:"subtotal"`
	}{
		alias:    alias(it),
		Subtotal: it.Subtotal(),
	})
}

// Order owns its items. TotalPrice is computed once at placement and
// never recomputed afterwards.
type Order struct {
	ID         string          `json:"id"`
	UserID     string          `json:"-"`
	User       string          `json:"user"` // requesting username
	Items      []Item          `json:"books"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}
