package author

import (
	"context"
)

// Service provides author-related business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Author, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByName(ctx context.Context, name string) (Author, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *Service) Create(ctx context.Context, a *Author) error {
	return s.repo.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (Author, error) {
	if p.Empty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, p)
}
