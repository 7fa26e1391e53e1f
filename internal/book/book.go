package book

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Hudesid/Only-Book/internal/author"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrAuthorNotFound is returned when a book references an unknown author.
	ErrAuthorNotFound = errors.New("author not found")
)

// Book represents a catalog entry. Price is decimal-exact; Stock only
// changes as a side effect of order placement.
type Book struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Author    author.Author   `json:"author"`
	ISBN      string          `json:"isbn"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// InStock reports whether at least one unit is available.
func (b Book) InStock() bool {
	return b.Stock > 0
}

// MarshalJSON adds the computed is_in_stock field to the representation.
func (b Book) MarshalJSON() ([]byte, error) {
	type alias Book
	return json.Marshal(struct {
		alias
		IsInStock bool `json:"is_in_stock"`
	}{
		alias:     alias(b),
		IsInStock: b.InStock(),
	})
}
