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

// BootstrapService guarantees the system is never without an administrator.
type BootstrapService struct {
	Store    store.Store
	Digester cryptox.Digester
	Audit    *AuditService

	// AdminPassword is the initial password assigned when the admin account
	// has to be created. It should be rotated immediately after first login.
	AdminPassword string
}

const bootstrapAdminUsername = "admin"

// EnsureAdmin creates the default administrator account if no user named
// "admin" exists. It runs on every startup and is idempotent: when the
// account is already present, active or not, nothing is written.
func (s *BootstrapService) EnsureAdmin(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	_, err := s.Store.Users().GetByUsername(ctx, bootstrapAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("bootstrap admin lookup: %w", err)
	}

	admin := domain.User{
		Username:         bootstrapAdminUsername,
		DisplayName:      "Administrador Principal",
		Role:             domain.RoleAdmin,
		CredentialDigest: s.Digester.Digest(s.AdminPassword),
		PermissionTags:   "all",
		Email:            "admin@panaderia.com",
		Active:           true,
	}

	if err := s.Store.Users().Create(ctx, &admin); err != nil {
		// A concurrent starter may have won the race; that is fine.
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil
		}
		return fmt.Errorf("bootstrap admin create: %w", err)
	}

	l.Info("bootstrap admin account created", slog.Int64("user_id", admin.ID))
	s.Audit.Record(ctx, &admin.ID, domain.AuditUsers, domain.AuditCreation,
		"bootstrap admin account created")
	return nil
}
