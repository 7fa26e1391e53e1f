package book

import (
	"context"
	"errors"

	"github.com/Hudesid/Only-Book/internal/author"
)

// Service provides book-related business logic.
type Service struct {
	repo    Repository
	authors AuthorResolver
}

func NewService(repo Repository, authors AuthorResolver) *Service {
	return &Service{repo: repo, authors: authors}
}

func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create resolves the author by name and persists the book.
func (s *Service) Create(ctx context.Context, b *Book, authorName string) error {
	a, err := s.authors.GetByName(ctx, authorName)
	if err != nil {
		if errors.Is(err, author.ErrNotFound) {
			return ErrAuthorNotFound
		}
		return err
	}

	b.Author = a
	return s.repo.Create(ctx, b)
}
