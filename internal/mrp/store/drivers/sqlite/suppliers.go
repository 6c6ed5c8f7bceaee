package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

const supplierColumns = `id, code, name, tax_id, address, phone, email, contact,
product_type, lead_time_days, rating, created_by, created_at, active`

type suppliersRepo struct {
	db dbtx
}

func (r *suppliersRepo) Create(ctx context.Context, s *domain.Supplier) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO suppliers (code, name, tax_id, address, phone, email, contact,
                       product_type, lead_time_days, rating, created_by, created_at, active)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Code,
		s.Name,
		s.TaxID,
		s.Address,
		s.Phone,
		s.Email,
		s.Contact,
		s.ProductType,
		s.LeadTimeDays,
		s.Rating,
		mapOptionalInt64(s.CreatedBy),
		s.CreatedAt,
		s.Active,
	)
	if err != nil {
		return mapUnique(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *suppliersRepo) GetByID(ctx context.Context, id int64) (domain.Supplier, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, id)
	return scanSupplier(row)
}

func (r *suppliersRepo) ListActive(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE active = 1 ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func scanSupplier(row scanner) (domain.Supplier, error) {
	var (
		s         domain.Supplier
		createdBy sql.NullInt64
	)
	err := row.Scan(
		&s.ID,
		&s.Code,
		&s.Name,
		&s.TaxID,
		&s.Address,
		&s.Phone,
		&s.Email,
		&s.Contact,
		&s.ProductType,
		&s.LeadTimeDays,
		&s.Rating,
		&createdBy,
		&s.CreatedAt,
		&s.Active,
	)
	if err != nil {
		return domain.Supplier{}, mapNotFound(err)
	}
	s.CreatedBy = mapNullInt64Ptr(createdBy)
	return s, nil
}
