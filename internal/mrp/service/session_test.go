package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/pkg/idx"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	ts.mustCreateUser(t, "jdoe", "hunter22", domain.RoleSales)

	sess, err := ts.Sessions.Login(ctx, "jdoe", "hunter22")
	require.NoError(t, err)
	require.False(t, sess.Token.IsZero())
	require.Equal(t, "jdoe", sess.Identity.Username)

	got, ok := ts.Sessions.Current(sess.Token)
	require.True(t, ok)
	require.Equal(t, sess.Identity, got.Identity)

	ts.Sessions.Logout(ctx, sess.Token)
	_, ok = ts.Sessions.Current(sess.Token)
	require.False(t, ok)
}

func TestLoginFailureRegistersNothing(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	ts.mustCreateUser(t, "jdoe", "hunter22", domain.RoleUser)

	_, err := ts.Sessions.Login(ctx, "jdoe", "wrong")
	require.ErrorIs(t, err, domain.ErrAuthFailure)
	require.Zero(t, ts.Sessions.Count())
}

func TestConcurrentLoginsAreIndependent(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	ts.mustCreateUser(t, "jdoe", "hunter22", domain.RoleUser)

	first, err := ts.Sessions.Login(ctx, "jdoe", "hunter22")
	require.NoError(t, err)
	second, err := ts.Sessions.Login(ctx, "jdoe", "hunter22")
	require.NoError(t, err)

	require.NotEqual(t, first.Token, second.Token)
	require.Equal(t, 2, ts.Sessions.Count())

	// Ending one presence leaves the other live.
	ts.Sessions.Logout(ctx, first.Token)
	_, ok := ts.Sessions.Current(second.Token)
	require.True(t, ok)
	require.Equal(t, 1, ts.Sessions.Count())
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	ts.mustCreateUser(t, "jdoe", "hunter22", domain.RoleUser)

	sess, err := ts.Sessions.Login(ctx, "jdoe", "hunter22")
	require.NoError(t, err)

	ts.Sessions.Logout(ctx, sess.Token)
	ts.Sessions.Logout(ctx, sess.Token)
	ts.Sessions.Logout(ctx, idx.New())

	require.Zero(t, ts.Sessions.Count())

	// Only one LOGOUT entry despite three calls.
	entries, err := ts.Audit.ListRecent(ctx, 50)
	require.NoError(t, err)
	var logouts int
	for _, e := range entries {
		if e.Action == domain.AuditLogout {
			logouts++
		}
	}
	require.Equal(t, 1, logouts)
}
