package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

type auditRepo struct {
	db dbtx
}

func (r *auditRepo) Append(ctx context.Context, e domain.AuditEntry) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO audit_log (id, actor_user_id, category, action, detail, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID,
		mapOptionalInt64(e.ActorUserID),
		string(e.Category),
		string(e.Action),
		e.Detail,
		e.CreatedAt,
	)
	return err
}

func (r *auditRepo) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, actor_user_id, category, action, detail, created_at
FROM audit_log
ORDER BY created_at DESC, id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var (
			e        domain.AuditEntry
			actor    sql.NullInt64
			category string
			action   string
		)
		if err := rows.Scan(&e.ID, &actor, &category, &action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.ActorUserID = mapNullInt64Ptr(actor)
		e.Category = domain.AuditCategory(category)
		e.Action = domain.AuditAction(action)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *auditRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM audit_log WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
