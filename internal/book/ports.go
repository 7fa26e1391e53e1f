package book

import (
	"context"

	"github.com/Hudesid/Only-Book/internal/author"
)

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	Create(ctx context.Context, b *Book) error
}

// AuthorResolver resolves the author referenced by name in a create request.
type AuthorResolver interface {
	GetByName(ctx context.Context, name string) (author.Author, error)
}
