package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
	"github.com/alejomzlz/panaderia-mrp/pkg/cryptox"
	"github.com/alejomzlz/panaderia-mrp/pkg/slogx"
)

// MinPasswordLength is the smallest password accepted on creation or change.
const MinPasswordLength = 6

// AuthService verifies identities against the credential store. It is the
// only component that touches digests; everything it returns is an Identity.
type AuthService struct {
	Store    store.Store
	Digester cryptox.Digester
	Audit    *AuditService
}

// Authenticate verifies a username/password pair. The single store lookup
// matches username, digest and the activity flag together, and every failure
// mode collapses into ErrAuthFailure so the caller cannot enumerate
// usernames. Storage faults are swallowed the same way (fail-closed).
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (domain.Identity, error) {
	l := slogx.FromContext(ctx)

	digest := s.Digester.Digest(password)

	user, err := s.Store.Users().Authenticate(ctx, username, digest)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.Error("credential lookup failed", slog.Any("error", err))
		}
		s.Audit.Record(ctx, nil, domain.AuditAuth, domain.AuditLoginFailure,
			fmt.Sprintf("login failed for user %s", username))
		return domain.Identity{}, domain.ErrAuthFailure
	}

	// Best-effort bookkeeping; a failed touch never fails the login.
	if err := s.Store.Users().TouchLastAccess(ctx, user.ID); err != nil {
		l.Warn("last access update failed", slog.Int64("user_id", user.ID), slog.Any("error", err))
	}

	s.Audit.Record(ctx, &user.ID, domain.AuditAuth, domain.AuditLoginSuccess,
		fmt.Sprintf("login for user %s", username))

	return user.Identity(), nil
}

// ChangePassword replaces a user's digest after re-verifying the current
// password. The new password must meet the minimum length and match its
// confirmation.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error {
	var fields []domain.FieldError
	if len(newPassword) < MinPasswordLength {
		fields = append(fields, domain.FieldError{
			Field:   "new_password",
			Message: fmt.Sprintf("must be at least %d characters", MinPasswordLength),
		})
	}
	if newPassword != confirm {
		fields = append(fields, domain.FieldError{
			Field:   "confirm_password",
			Message: "does not match new password",
		})
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}

	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrNotFound
		}
		slogx.FromContext(ctx).Error("user lookup failed", slog.Any("error", err))
		return domain.ErrAuthFailure
	}

	if !s.Digester.Verify(current, user.CredentialDigest) {
		return domain.ErrAuthFailure
	}

	if err := s.Store.Users().UpdateDigest(ctx, userID, s.Digester.Digest(newPassword)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrNotFound
		}
		slogx.FromContext(ctx).Error("digest update failed", slog.Any("error", err))
		return domain.ErrAuthFailure
	}

	s.Audit.Record(ctx, &userID, domain.AuditAuth, domain.AuditPasswordChange,
		fmt.Sprintf("password changed for user %s", user.Username))
	return nil
}
