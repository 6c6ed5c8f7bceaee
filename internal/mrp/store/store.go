package store

import (
	"context"
	"errors"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories to keep concerns tidy and testable.
type Store interface {
	Users() Users
	Products() Products
	Suppliers() Suppliers
	Clients() Clients
	Sales() Sales
	Movements() Movements
	Audit() Audit
	Metrics() Metrics

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users is the credential store: the durable record of every identity and
// its digest.
type Users interface {
	// Create inserts a new user and fills in the assigned id. The caller
	// computes the digest; raw passwords never reach the store.
	// Returns ErrAlreadyExists on a duplicate username.
	Create(ctx context.Context, u *domain.User) error

	// GetByUsername returns a user by its unique username.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// GetByID returns a user by id.
	GetByID(ctx context.Context, id int64) (domain.User, error)

	// Authenticate returns the user matching username, digest and active=1
	// simultaneously. Any mismatch on any of the three is ErrNotFound.
	Authenticate(ctx context.Context, username, digest string) (domain.User, error)

	// UpdateDigest replaces the credential digest wholesale.
	UpdateDigest(ctx context.Context, userID int64, newDigest string) error

	// TouchLastAccess sets last_access_at to now.
	TouchLastAccess(ctx context.Context, userID int64) error

	// SetActive flips the activity flag.
	SetActive(ctx context.Context, userID int64, active bool) error

	// List returns all users ordered by creation time descending, inactive
	// ones included; filtering is a caller concern.
	List(ctx context.Context) ([]domain.User, error)

	// CountActive returns the number of active users.
	CountActive(ctx context.Context) (int64, error)
}

type Products interface {
	// Create inserts a new product. Returns ErrAlreadyExists on a duplicate code.
	Create(ctx context.Context, p *domain.Product) error

	// GetByID returns a product by id.
	GetByID(ctx context.Context, id int64) (domain.Product, error)

	// ListActive returns active products ordered by name, supplier name joined.
	ListActive(ctx context.Context) ([]domain.Product, error)

	// ListBelowMinimum returns active products with stock_current < stock_min.
	ListBelowMinimum(ctx context.Context) ([]domain.Product, error)

	// UpdateStock sets the current stock level.
	UpdateStock(ctx context.Context, productID, stock int64) error
}

type Suppliers interface {
	Create(ctx context.Context, s *domain.Supplier) error
	GetByID(ctx context.Context, id int64) (domain.Supplier, error)
	ListActive(ctx context.Context) ([]domain.Supplier, error)
}

type Clients interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int64) (domain.Client, error)
	ListActive(ctx context.Context) ([]domain.Client, error)
}

type Sales interface {
	// Create inserts the sale header. Returns ErrAlreadyExists on a
	// duplicate invoice number.
	Create(ctx context.Context, s *domain.Sale) error

	// CreateLine inserts one line item for an existing sale.
	CreateLine(ctx context.Context, l *domain.SaleLine) error

	// ListRecent returns the most recent sales with the client name joined.
	ListRecent(ctx context.Context, limit int) ([]domain.Sale, error)

	// TotalSince sums sale totals recorded on or after the given time.
	TotalSince(ctx context.Context, since time.Time) (float64, error)
}

type Movements interface {
	Create(ctx context.Context, m *domain.StockMovement) error
	ListByProduct(ctx context.Context, productID int64, limit int) ([]domain.StockMovement, error)
}

type Audit interface {
	// Append writes one audit entry.
	Append(ctx context.Context, e domain.AuditEntry) error

	// ListRecent returns the newest entries first.
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error)

	// DeleteOlderThan prunes entries created before the cutoff and returns
	// the number removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Metrics serves the dashboard aggregates.
type Metrics interface {
	CountActiveProducts(ctx context.Context) (int64, error)
	CountLowStockProducts(ctx context.Context) (int64, error)
	InventoryValue(ctx context.Context) (float64, error)
}
