package author

import (
	"context"
)

// Repository defines the contract for author data storage.
type Repository interface {
	List(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id string) (Author, error)
	GetByName(ctx context.Context, name string) (Author, error)
	Create(ctx context.Context, a *Author) error
	Update(ctx context.Context, id string, p Patch) (Author, error)
}
