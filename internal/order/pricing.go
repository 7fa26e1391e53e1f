package order

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Hudesid/Only-Book/internal/book"
)

// Validator checks stock sufficiency and computes exact line pricing.
// It is read-only: it never mutates stock and never persists anything.
type Validator struct {
	books BookReader
}

func NewValidator(books BookReader) *Validator {
	return &Validator{books: books}
}

// Validate resolves each requested line in input order and stops at the
// first failure. On success it returns the priced lines and the exact
// order total.
func (v *Validator) Validate(ctx context.Context, lines []Line) ([]PricedLine, decimal.Decimal, error) {
	priced := make([]PricedLine, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		b, err := v.books.GetByID(ctx, line.BookID)
		if err != nil {
			if errors.Is(err, book.ErrNotFound) {
				return nil, decimal.Zero, &BookNotFoundError{BookID: line.BookID}
			}
			return nil, decimal.Zero, err
		}

		if line.Quantity <= 0 {
			return nil, decimal.Zero, ErrInvalidQuantity
		}

		if b.Stock < line.Quantity {
			return nil, decimal.Zero, &InsufficientStockError{
				BookID:    b.ID,
				Title:     b.Title,
				Available: b.Stock,
			}
		}

		subtotal := b.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		priced = append(priced, PricedLine{
			Book:     b,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		total = total.Add(subtotal)
	}

	return priced, total, nil
}
