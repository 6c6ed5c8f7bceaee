package sqlite

import (
	"context"
	"database/sql"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open; caller commits or rolls back

// Ping is a no-op inside a transaction; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts

func (t *txStore) Users() store.Users         { return &usersRepo{db: t.tx} }
func (t *txStore) Products() store.Products   { return &productsRepo{db: t.tx} }
func (t *txStore) Suppliers() store.Suppliers { return &suppliersRepo{db: t.tx} }
func (t *txStore) Clients() store.Clients     { return &clientsRepo{db: t.tx} }
func (t *txStore) Sales() store.Sales         { return &salesRepo{db: t.tx} }
func (t *txStore) Movements() store.Movements { return &movementsRepo{db: t.tx} }
func (t *txStore) Audit() store.Audit         { return &auditRepo{db: t.tx} }
func (t *txStore) Metrics() store.Metrics     { return &metricsRepo{db: t.tx} }
