package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/pkg/idx"
)

func TestHousekeepingPrunesOldAuditEntries(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	old := domain.AuditEntry{
		ID:        idx.New().String(),
		Category:  domain.AuditAuth,
		Action:    domain.AuditLoginFailure,
		Detail:    "login failed for user ghost",
		CreatedAt: time.Now().UTC().Add(-120 * 24 * time.Hour),
	}
	recent := domain.AuditEntry{
		ID:        idx.New().String(),
		Category:  domain.AuditAuth,
		Action:    domain.AuditLoginSuccess,
		Detail:    "login for user admin",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.Audit().Append(ctx, old))
	require.NoError(t, st.Audit().Append(ctx, recent))

	hk := NewHousekeepingService(st, slog.Default(), time.Hour, 90*24*time.Hour)
	hk.Start()
	hk.Stop()

	entries, err := st.Audit().ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, recent.ID, entries[0].ID)
}

func TestHousekeepingDefaults(t *testing.T) {
	hk := NewHousekeepingService(newTestStore(t), slog.Default(), 0, 0)
	require.Equal(t, time.Hour, hk.Interval)
	require.Equal(t, 90*24*time.Hour, hk.Retention)
}
