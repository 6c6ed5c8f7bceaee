package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
	_ "modernc.org/sqlite"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so every repository works
// inside and outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite serializes writers; a single connection avoids busy errors.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// safe to call even after commit
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users         { return &usersRepo{db: s.db} }
func (s *Store) Products() store.Products   { return &productsRepo{db: s.db} }
func (s *Store) Suppliers() store.Suppliers { return &suppliersRepo{db: s.db} }
func (s *Store) Clients() store.Clients     { return &clientsRepo{db: s.db} }
func (s *Store) Sales() store.Sales         { return &salesRepo{db: s.db} }
func (s *Store) Movements() store.Movements { return &movementsRepo{db: s.db} }
func (s *Store) Audit() store.Audit         { return &auditRepo{db: s.db} }
func (s *Store) Metrics() store.Metrics     { return &metricsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapUnique translates the driver's UNIQUE constraint failure into
// store.ErrAlreadyExists. modernc.org/sqlite exposes no typed error for it.
func mapUnique(err error) error {
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "unique") {
		return store.ErrAlreadyExists
	}
	return err
}

func mapNullInt64Ptr(n sql.NullInt64) *int64 {
	if n.Valid {
		v := n.Int64
		return &v
	}
	return nil
}

func mapOptionalInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func mapNullTimePtr(n sql.NullTime) *time.Time {
	if n.Valid {
		v := n.Time
		return &v
	}
	return nil
}
