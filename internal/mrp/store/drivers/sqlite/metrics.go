package sqlite

import "context"

type metricsRepo struct {
	db dbtx
}

func (r *metricsRepo) CountActiveProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE active = 1`).Scan(&n)
	return n, err
}

func (r *metricsRepo) CountLowStockProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE active = 1 AND stock_current < stock_min`).Scan(&n)
	return n, err
}

func (r *metricsRepo) InventoryValue(ctx context.Context) (float64, error) {
	var v float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(stock_current * purchase_price), 0) FROM products WHERE active = 1`).Scan(&v)
	return v, err
}
