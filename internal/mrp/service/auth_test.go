package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	id := ts.mustCreateUser(t, "jdoe", "hunter22", domain.RoleSales)

	t.Run("valid credentials", func(t *testing.T) {
		identity, err := ts.Auth.Authenticate(ctx, "jdoe", "hunter22")
		require.NoError(t, err)
		require.Equal(t, id, identity.ID)
		require.Equal(t, "jdoe", identity.Username)
		require.Equal(t, domain.RoleSales, identity.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := ts.Auth.Authenticate(ctx, "jdoe", "wrong")
		require.ErrorIs(t, err, domain.ErrAuthFailure)
	})

	t.Run("unknown username fails identically", func(t *testing.T) {
		_, err := ts.Auth.Authenticate(ctx, "nobody", "hunter22")
		require.ErrorIs(t, err, domain.ErrAuthFailure)
	})

	t.Run("inactive account", func(t *testing.T) {
		require.NoError(t, ts.Users.SetActive(ctx, id, false))
		_, err := ts.Auth.Authenticate(ctx, "jdoe", "hunter22")
		require.ErrorIs(t, err, domain.ErrAuthFailure)

		require.NoError(t, ts.Users.SetActive(ctx, id, true))
		_, err = ts.Auth.Authenticate(ctx, "jdoe", "hunter22")
		require.NoError(t, err)
	})
}

func TestAuthenticateUpdatesLastAccess(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	id := ts.mustCreateUser(t, "jdoe", "hunter22", domain.RoleUser)

	before, err := ts.Users.Get(ctx, id)
	require.NoError(t, err)
	require.Nil(t, before.LastAccessAt)

	_, err = ts.Auth.Authenticate(ctx, "jdoe", "hunter22")
	require.NoError(t, err)

	after, err := ts.Users.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, after.LastAccessAt)
}

func TestAuthenticateWritesAudit(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	ts.mustCreateUser(t, "jdoe", "hunter22", domain.RoleUser)

	_, err := ts.Auth.Authenticate(ctx, "jdoe", "hunter22")
	require.NoError(t, err)
	_, err = ts.Auth.Authenticate(ctx, "jdoe", "wrong")
	require.ErrorIs(t, err, domain.ErrAuthFailure)

	entries, err := ts.Audit.ListRecent(ctx, 10)
	require.NoError(t, err)

	var success, failure bool
	for _, e := range entries {
		switch e.Action {
		case domain.AuditLoginSuccess:
			success = true
			require.NotNil(t, e.ActorUserID)
		case domain.AuditLoginFailure:
			failure = true
			require.NotContains(t, e.Detail, "hunter22")
			require.NotContains(t, e.Detail, "wrong")
		}
	}
	require.True(t, success)
	require.True(t, failure)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	id := ts.mustCreateUser(t, "jdoe", "hunter22", domain.RoleUser)

	t.Run("short new password", func(t *testing.T) {
		err := ts.Auth.ChangePassword(ctx, id, "hunter22", "abc", "abc")
		require.True(t, domain.IsValidation(err))
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		err := ts.Auth.ChangePassword(ctx, id, "hunter22", "newpass1", "newpass2")
		require.True(t, domain.IsValidation(err))
	})

	t.Run("wrong current password", func(t *testing.T) {
		err := ts.Auth.ChangePassword(ctx, id, "nope", "newpass1", "newpass1")
		require.ErrorIs(t, err, domain.ErrAuthFailure)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := ts.Auth.ChangePassword(ctx, 9999, "hunter22", "newpass1", "newpass1")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("success invalidates old password", func(t *testing.T) {
		require.NoError(t, ts.Auth.ChangePassword(ctx, id, "hunter22", "newpass1", "newpass1"))

		_, err := ts.Auth.Authenticate(ctx, "jdoe", "hunter22")
		require.ErrorIs(t, err, domain.ErrAuthFailure)

		_, err = ts.Auth.Authenticate(ctx, "jdoe", "newpass1")
		require.NoError(t, err)
	})
}

func TestIdentityCarriesNoDigest(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	ts.mustCreateUser(t, "jdoe", "hunter22", domain.RoleUser)

	identity, err := ts.Auth.Authenticate(ctx, "jdoe", "hunter22")
	require.NoError(t, err)

	// Identity is a closed projection; the digest is not among its fields.
	require.Equal(t, domain.Identity{
		ID:          identity.ID,
		Username:    "jdoe",
		DisplayName: "Test jdoe",
		Role:        domain.RoleUser,
	}, identity)
}
