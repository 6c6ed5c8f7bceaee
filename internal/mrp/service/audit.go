package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
	"github.com/alejomzlz/panaderia-mrp/pkg/idx"
	"github.com/alejomzlz/panaderia-mrp/pkg/slogx"
)

// AuditService appends entries to the audit log. Recording is best-effort:
// a failed append is logged and never fails the operation being audited.
// Detail strings must never carry a plaintext password or a digest.
type AuditService struct {
	Store store.Store
}

func (s *AuditService) Record(
	ctx context.Context,
	actor *int64,
	category domain.AuditCategory,
	action domain.AuditAction,
	detail string,
) {
	entry := domain.AuditEntry{
		ID:          idx.New().String(),
		ActorUserID: actor,
		Category:    category,
		Action:      action,
		Detail:      detail,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Store.Audit().Append(ctx, entry); err != nil {
		slogx.FromContext(ctx).Warn("audit append failed",
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}
}

// ListRecent returns the newest audit entries first.
func (s *AuditService) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.Store.Audit().ListRecent(ctx, limit)
}
