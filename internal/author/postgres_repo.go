package author

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

const authorColumns = `
	a.id,
	a.name,
	COALESCE(to_char(a.birth_date, 'YYYY-MM-DD'), ''),
	a.biography,
	(SELECT COUNT(*) FROM books b WHERE b.author_id = a.id),
	a.created_at,
	a.updated_at`

func scanAuthor(row pgx.Row, a *Author) error {
	return row.Scan(&a.ID, &a.Name, &a.BirthDate, &a.Biography, &a.BooksCount, &a.CreatedAt, &a.UpdatedAt)
}

func (r *PostgresRepo) List(ctx context.Context) ([]Author, error) {
	query := `SELECT` + authorColumns + `
	FROM authors a
	ORDER BY a.name`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []Author
	for rows.Next() {
		var a Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Author, error) {
	query := `SELECT` + authorColumns + `
	FROM authors a
	WHERE a.id = $1
	LIMIT 1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var a Author
	err := scanAuthor(r.db.QueryRow(timeoutCtx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) GetByName(ctx context.Context, name string) (Author, error) {
	query := `SELECT` + authorColumns + `
	FROM authors a
	WHERE a.name = $1
	LIMIT 1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var a Author
	err := scanAuthor(r.db.QueryRow(timeoutCtx, query, name), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) Create(ctx context.Context, a *Author) error {
	const query = `
	INSERT INTO authors (id, name, birth_date, biography)
	VALUES (gen_random_uuid(), $1, NULLIF($2, '')::date, $3)
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, a.Name, a.BirthDate, a.Biography).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *PostgresRepo) Update(ctx context.Context, id string, p Patch) (Author, error) {
	setClauses := []string{"updated_at = now()"}
	args := []any{id}

	if p.Name != nil {
		args = append(args, *p.Name)
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", len(args)))
	}
	if p.BirthDate != nil {
		args = append(args, *p.BirthDate)
		setClauses = append(setClauses, fmt.Sprintf("birth_date = NULLIF($%d, '')::date", len(args)))
	}
	if p.Biography != nil {
		args = append(args, *p.Biography)
		setClauses = append(setClauses, fmt.Sprintf("biography = $%d", len(args)))
	}

	query := fmt.Sprintf(`
	UPDATE authors a
	SET %s
	WHERE a.id = $1
	RETURNING`+authorColumns, strings.Join(setClauses, ", "))

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var a Author
	err := scanAuthor(r.db.QueryRow(timeoutCtx, query, args...), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, err
	}
	return a, nil
}
