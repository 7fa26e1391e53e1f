package author

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an author is not found.
var ErrNotFound = errors.New("author not found")

// Author represents a book author. BooksCount is computed at read time,
// never stored.
type Author struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	BirthDate  string    `json:"birth_date"` // YYYY-MM-DD
	Biography  string    `json:"biography"`
	BooksCount int       `json:"books_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Patch is a partial update: nil fields are left untouched.
type Patch struct {
	Name      *string
	BirthDate *string
	Biography *string
}

// Empty reports whether the patch would change nothing.
func (p Patch) Empty() bool {
	return p.Name == nil && p.BirthDate == nil && p.Biography == nil
}
