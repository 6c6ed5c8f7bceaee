package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

const productSelect = `
SELECT p.id, p.code, p.name, p.description, p.category, p.unit,
       p.purchase_price, p.sale_price, p.stock_min, p.stock_max, p.stock_current,
       p.location, p.supplier_id, COALESCE(s.name, ''), p.created_by, p.created_at, p.active
FROM products p
LEFT JOIN suppliers s ON p.supplier_id = s.id`

type productsRepo struct {
	db dbtx
}

func (r *productsRepo) Create(ctx context.Context, p *domain.Product) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO products (code, name, description, category, unit,
                      purchase_price, sale_price, stock_min, stock_max, stock_current,
                      location, supplier_id, created_by, created_at, active)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Code,
		p.Name,
		p.Description,
		p.Category,
		p.Unit,
		p.PurchasePrice,
		p.SalePrice,
		p.StockMin,
		p.StockMax,
		p.StockCurrent,
		p.Location,
		mapOptionalInt64(p.SupplierID),
		mapOptionalInt64(p.CreatedBy),
		p.CreatedAt,
		p.Active,
	)
	if err != nil {
		return mapUnique(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *productsRepo) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = ?`, id)
	return scanProduct(row)
}

func (r *productsRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, productSelect+` WHERE p.active = 1 ORDER BY p.name`)
}

func (r *productsRepo) ListBelowMinimum(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, productSelect+`
WHERE p.active = 1 AND p.stock_current < p.stock_min
ORDER BY p.name`)
}

func (r *productsRepo) UpdateStock(ctx context.Context, productID, stock int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET stock_current = ? WHERE id = ?`, stock, productID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *productsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row scanner) (domain.Product, error) {
	var (
		p          domain.Product
		supplierID sql.NullInt64
		createdBy  sql.NullInt64
	)
	err := row.Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.Unit,
		&p.PurchasePrice,
		&p.SalePrice,
		&p.StockMin,
		&p.StockMax,
		&p.StockCurrent,
		&p.Location,
		&supplierID,
		&p.SupplierName,
		&createdBy,
		&p.CreatedAt,
		&p.Active,
	)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	p.SupplierID = mapNullInt64Ptr(supplierID)
	p.CreatedBy = mapNullInt64Ptr(createdBy)
	return p, nil
}
