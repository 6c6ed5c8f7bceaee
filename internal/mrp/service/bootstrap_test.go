package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

func TestEnsureAdminCreatesAccount(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	require.NoError(t, ts.Bootstrap.EnsureAdmin(ctx))

	identity, err := ts.Auth.Authenticate(ctx, "admin", "Admin2024!")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, identity.Role)
	require.Equal(t, "Administrador Principal", identity.DisplayName)
	require.Equal(t, "all", identity.PermissionTags)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	require.NoError(t, ts.Bootstrap.EnsureAdmin(ctx))
	require.NoError(t, ts.Bootstrap.EnsureAdmin(ctx))

	users, err := ts.Store.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestEnsureAdminDoesNotResetPassword(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	require.NoError(t, ts.Bootstrap.EnsureAdmin(ctx))

	admin, err := ts.Store.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NoError(t, ts.Auth.ChangePassword(ctx, admin.ID, "Admin2024!", "rotated1", "rotated1"))

	// The next startup must not claw the password back to the default.
	require.NoError(t, ts.Bootstrap.EnsureAdmin(ctx))

	_, err = ts.Auth.Authenticate(ctx, "admin", "Admin2024!")
	require.ErrorIs(t, err, domain.ErrAuthFailure)
	_, err = ts.Auth.Authenticate(ctx, "admin", "rotated1")
	require.NoError(t, err)
}

func TestEnsureAdminSkipsDeactivatedAdmin(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	require.NoError(t, ts.Bootstrap.EnsureAdmin(ctx))

	admin, err := ts.Store.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NoError(t, ts.Users.SetActive(ctx, admin.ID, false))

	// Existing-but-inactive still counts as existing.
	require.NoError(t, ts.Bootstrap.EnsureAdmin(ctx))

	again, err := ts.Store.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.False(t, again.Active)
}
