package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const bookColumns = `
	b.id,
	b.title,
	b.isbn,
	b.price,
	b.stock,
	b.created_at,
	b.updated_at,
	a.id,
	a.name,
	COALESCE(to_char(a.birth_date, 'YYYY-MM-DD'), ''),
	a.biography,
	(SELECT COUNT(*) FROM books b2 WHERE b2.author_id = a.id),
	a.created_at,
	a.updated_at`

func scanBook(row pgx.Row, b *Book) error {
	return row.Scan(
		&b.ID, &b.Title, &b.ISBN, &b.Price, &b.Stock, &b.CreatedAt, &b.UpdatedAt,
		&b.Author.ID, &b.Author.Name, &b.Author.BirthDate, &b.Author.Biography,
		&b.Author.BooksCount, &b.Author.CreatedAt, &b.Author.UpdatedAt,
	)
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	query := `SELECT` + bookColumns + `
	FROM books b
	JOIN authors a ON a.id = b.author_id
	ORDER BY b.title`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := scanBook(rows, &b); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	query := `SELECT` + bookColumns + `
	FROM books b
	JOIN authors a ON a.id = b.author_id
	WHERE b.id = $1
	LIMIT 1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var b Book
	err := scanBook(r.db.QueryRow(timeoutCtx, query, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const insertSQL = `
	INSERT INTO books (id, title, author_id, isbn, price, stock)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, insertSQL, b.Title, b.Author.ID, b.ISBN, b.Price, b.Stock).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return err
	}

	// books_count is live; refresh it so the response reflects this insert.
	const countSQL = `SELECT COUNT(*) FROM books WHERE author_id = $1`
	return r.db.QueryRow(timeoutCtx, countSQL, b.Author.ID).Scan(&b.Author.BooksCount)
}
