package order

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

// Create writes the order and its items in a single transaction. Stock is
// decremented with a guard so two concurrent placements cannot oversell:
// a decrement that would drive stock negative affects zero rows and
// aborts the whole transaction.
func (r *PostgresRepo) Create(ctx context.Context, o *Order) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	const orderSQL = `
	INSERT INTO orders (id, user_id, total_price)
	VALUES (gen_random_uuid(), $1, $2)
	RETURNING id, created_at`

	if err := tx.QueryRow(timeoutCtx, orderSQL, o.UserID, o.TotalPrice).Scan(&o.ID, &o.CreatedAt); err != nil {
		return err
	}

	const decrementSQL = `
	UPDATE books
	SET stock = stock - $2, updated_at = now()
	WHERE id = $1 AND stock >= $2`

	const itemSQL = `
	INSERT INTO order_items (id, order_id, book_id, quantity, unit_price)
	VALUES (gen_random_uuid(), $1, $2, $3, $4)
	RETURNING id`

	for i := range o.Items {
		item := &o.Items[i]

		tag, err := tx.Exec(timeoutCtx, decrementSQL, item.BookID, item.Quantity)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return r.insufficientStock(timeoutCtx, tx, item.BookID)
		}

		if err := tx.QueryRow(timeoutCtx, itemSQL, o.ID, item.BookID, item.Quantity, item.UnitPrice).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit(timeoutCtx)
}

// insufficientStock resolves the failed guard into a typed error carrying
// the remaining stock. An unknown id means the book row is gone.
func (r *PostgresRepo) insufficientStock(ctx context.Context, tx pgx.Tx, bookID string) error {
	var title string
	var stock int
	err := tx.QueryRow(ctx, `SELECT title, stock FROM books WHERE id = $1`, bookID).Scan(&title, &stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &BookNotFoundError{BookID: bookID}
		}
		return err
	}
	return &InsufficientStockError{BookID: bookID, Title: title, Available: stock}
}

func (r *PostgresRepo) List(ctx context.Context) ([]Order, error) {
	const ordersSQL = `
	SELECT o.id, o.user_id, u.username, o.total_price, o.created_at
	FROM orders o
	JOIN users u ON u.id = o.user_id
	ORDER BY o.created_at DESC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, ordersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	index := make(map[string]int)
	var ids []string
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.User, &o.TotalPrice, &o.CreatedAt); err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}

	const itemsSQL = `
	SELECT id, order_id, book_id, quantity, unit_price
	FROM order_items
	WHERE order_id = ANY($1)
	ORDER BY id`

	itemRows, err := r.db.Query(timeoutCtx, itemsSQL, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item Item
		var orderID string
		if err := itemRows.Scan(&item.ID, &orderID, &item.BookID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
