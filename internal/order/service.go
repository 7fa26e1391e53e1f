package order

import (
	"context"
)

// Service orchestrates order placement: validation first, persistence
// only when every line passed.
type Service struct {
	validator *Validator
	repo      Repository
}

func NewService(validator *Validator, repo Repository) *Service {
	return &Service{validator: validator, repo: repo}
}

// Place validates the requested lines and persists the order with its
// items. Nothing is written when validation fails.
func (s *Service) Place(ctx context.Context, userID, username string, lines []Line) (Order, error) {
	if len(lines) == 0 {
		return Order{}, ErrEmptyOrder
	}

	priced, total, err := s.validator.Validate(ctx, lines)
	if err != nil {
		return Order{}, err
	}

	o := Order{
		UserID:     userID,
		User:       username,
		TotalPrice: total,
	}
	for _, pl := range priced {
		o.Items = append(o.Items, Item{
			BookID:    pl.Book.ID,
			Quantity:  pl.Quantity,
			UnitPrice: pl.Book.Price,
		})
	}

	if err := s.repo.Create(ctx, &o); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}
