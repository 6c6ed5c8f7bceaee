package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

type salesRepo struct {
	db dbtx
}

func (r *salesRepo) Create(ctx context.Context, s *domain.Sale) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO sales (invoice_number, client_id, sale_date, subtotal, discount, tax, total,
                   status, payment_method, notes, seller_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.InvoiceNumber,
		s.ClientID,
		s.Date,
		s.Subtotal,
		s.Discount,
		s.Tax,
		s.Total,
		s.Status,
		s.PaymentMethod,
		s.Notes,
		mapOptionalInt64(s.SellerID),
		s.CreatedAt,
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

func (r *salesRepo) CreateLine(ctx context.Context, l *domain.SaleLine) error {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO sale_lines (sale_id, product_id, quantity, unit_price, discount, line_total)
VALUES (?, ?, ?, ?, ?, ?)`,
		l.SaleID,
		l.ProductID,
		l.Quantity,
		l.UnitPrice,
		l.Discount,
		l.LineTotal,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

func (r *salesRepo) ListRecent(ctx context.Context, limit int) ([]domain.Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT v.id, v.invoice_number, v.client_id, COALESCE(c.name, ''), v.sale_date,
       v.subtotal, v.discount, v.tax, v.total, v.status, v.payment_method, v.notes,
       v.seller_id, v.created_at
FROM sales v
JOIN clients c ON v.client_id = c.id
ORDER BY v.sale_date DESC, v.id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var (
			s        domain.Sale
			sellerID sql.NullInt64
		)
		err := rows.Scan(
			&s.ID,
			&s.InvoiceNumber,
			&s.ClientID,
			&s.ClientName,
			&s.Date,
			&s.Subtotal,
			&s.Discount,
			&s.Tax,
			&s.Total,
			&s.Status,
			&s.PaymentMethod,
			&s.Notes,
			&sellerID,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		s.SellerID = mapNullInt64Ptr(sellerID)
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *salesRepo) TotalSince(ctx context.Context, since time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM sales WHERE sale_date >= ?`, since).Scan(&total)
	return total, err
}
