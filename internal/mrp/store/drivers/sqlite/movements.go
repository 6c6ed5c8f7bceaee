package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

type movementsRepo struct {
	db dbtx
}

func (r *movementsRepo) Create(ctx context.Context, m *domain.StockMovement) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO stock_movements (movement_type, ref_id, ref_type, product_id, quantity, unit,
                             stock_before, stock_after, actor_id, notes, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Type,
		mapOptionalInt64(m.RefID),
		m.RefType,
		m.ProductID,
		m.Quantity,
		m.Unit,
		m.StockBefore,
		m.StockAfter,
		mapOptionalInt64(m.ActorID),
		m.Notes,
		m.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

func (r *movementsRepo) ListByProduct(ctx context.Context, productID int64, limit int) ([]domain.StockMovement, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, movement_type, ref_id, ref_type, product_id, quantity, unit,
       stock_before, stock_after, actor_id, notes, created_at
FROM stock_movements
WHERE product_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?`, productID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []domain.StockMovement
	for rows.Next() {
		var (
			m       domain.StockMovement
			refID   sql.NullInt64
			actorID sql.NullInt64
		)
		err := rows.Scan(
			&m.ID,
			&m.Type,
			&refID,
			&m.RefType,
			&m.ProductID,
			&m.Quantity,
			&m.Unit,
			&m.StockBefore,
			&m.StockAfter,
			&actorID,
			&m.Notes,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		m.RefID = mapNullInt64Ptr(refID)
		m.ActorID = mapNullInt64Ptr(actorID)
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
