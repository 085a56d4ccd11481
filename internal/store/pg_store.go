package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	ordererrors "github.com/omnomnom-foods/orderdesk/internal/errors"
)

const uniqueViolation = "23505"

type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of OrderStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

func (p *PgStore) ListAll(ctx context.Context) ([]Order, error) {
	rows, err := p.db.Query(ctx, `
		SELECT id, name, phone, items, status, created_at
		FROM orders
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, ordererrors.ErrFailedToListOrders
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Order])
	if err != nil {
		return nil, ordererrors.ErrFailedToListOrders
	}
	return orders, nil
}

func (p *PgStore) FindByID(ctx context.Context, id string) (*Order, error) {
	rows, err := p.db.Query(ctx, `
		SELECT id, name, phone, items, status, created_at
		FROM orders
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, ordererrors.ErrFailedToFindOrder
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ordererrors.ErrOrderNotFound
		}
		return nil, ordererrors.ErrFailedToFindOrder
	}
	return &order, nil
}

func (p *PgStore) SetStatus(ctx context.Context, id string, status string) (*Order, error) {
	var updated Order

	// Use transaction to ensure atomicity and consistency
	txErr := p.withTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			UPDATE orders
			SET status = $2
			WHERE id = $1
			RETURNING id, name, phone, items, status, created_at
		`, id, status)
		if err != nil {
			return ordererrors.ErrUpdateOrder
		}
		updated, err = pgx.CollectOneRow(rows, pgx.RowToStructByPos[Order])
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ordererrors.ErrOrderNotFound
			}
			return ordererrors.ErrUpdateOrder
		}
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}
	return &updated, nil
}

func (p *PgStore) Create(ctx context.Context, params CreateOrderParams) (*Order, error) {
	rows, err := p.db.Query(ctx, `
		INSERT INTO orders (id, name, phone, items, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, phone, items, status, created_at
	`, params.ID, params.Name, params.Phone, params.Items, params.Status)
	if err != nil {
		return nil, ordererrors.ErrCreateOrder
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[Order])
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ordererrors.ErrDuplicateOrderID
		}
		return nil, ordererrors.ErrCreateOrder
	}
	return &order, nil
}

func (p *PgStore) Seed(ctx context.Context, orders []CreateOrderParams) error {
	// Idempotent by design: re-running on startup must not fail on existing ids.
	txErr := p.withTransaction(ctx, func(tx pgx.Tx) error {
		for _, o := range orders {
			_, err := tx.Exec(ctx, `
				INSERT INTO orders (id, name, phone, items, status)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (id) DO NOTHING
			`, o.ID, o.Name, o.Phone, o.Items, o.Status)
			if err != nil {
				return ordererrors.ErrSeedOrders
			}
		}
		return nil
	})
	return txErr
}

func (p *PgStore) ClearAll(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, `DELETE FROM orders`); err != nil {
		return ordererrors.ErrClearOrders
	}
	return nil
}

func (p *PgStore) withTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return ordererrors.ErrTransactionBegin
	}

	err = fn(tx)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return ordererrors.ErrTransactionRollback
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return ordererrors.ErrTransactionCommit
	}

	return nil
}
