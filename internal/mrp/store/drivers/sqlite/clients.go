package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

const clientColumns = `id, code, name, document_type, document_number, address, phone,
email, credit_limit, balance, category, created_by, created_at, active`

type clientsRepo struct {
	db dbtx
}

func (r *clientsRepo) Create(ctx context.Context, c *domain.Client) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO clients (code, name, document_type, document_number, address, phone,
                     email, credit_limit, balance, category, created_by, created_at, active)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Code,
		c.Name,
		c.DocumentType,
		c.DocumentNumber,
		c.Address,
		c.Phone,
		c.Email,
		c.CreditLimit,
		c.Balance,
		c.Category,
		mapOptionalInt64(c.CreatedBy),
		c.CreatedAt,
		c.Active,
	)
	if err != nil {
		return mapUnique(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *clientsRepo) GetByID(ctx context.Context, id int64) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	return scanClient(row)
}

func (r *clientsRepo) ListActive(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE active = 1 ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func scanClient(row scanner) (domain.Client, error) {
	var (
		c         domain.Client
		createdBy sql.NullInt64
	)
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.DocumentType,
		&c.DocumentNumber,
		&c.Address,
		&c.Phone,
		&c.Email,
		&c.CreditLimit,
		&c.Balance,
		&c.Category,
		&createdBy,
		&c.CreatedAt,
		&c.Active,
	)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	c.CreatedBy = mapNullInt64Ptr(createdBy)
	return c, nil
}
