package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/cache"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
	"github.com/alejomzlz/panaderia-mrp/pkg/cryptox"
)

// UserService is the admin-facing user management surface.
type UserService struct {
	Store    store.Store
	Digester cryptox.Digester
	Cache    *cache.Cache
	Audit    *AuditService
}

// CreateUserInput carries everything needed to provision an account. The
// raw password lives only long enough to be digested.
type CreateUserInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	DisplayName     string
	Role            domain.Role
	PermissionTags  string
	Email           string
	Phone           string
	Department      string
}

func (in CreateUserInput) validate() error {
	var fields []domain.FieldError
	if strings.TrimSpace(in.Username) == "" {
		fields = append(fields, domain.FieldError{Field: "username", Message: "is required"})
	}
	if strings.TrimSpace(in.DisplayName) == "" {
		fields = append(fields, domain.FieldError{Field: "display_name", Message: "is required"})
	}
	if !in.Role.Valid() {
		fields = append(fields, domain.FieldError{Field: "role", Message: "is not a recognised role"})
	}
	if len(in.Password) < MinPasswordLength {
		fields = append(fields, domain.FieldError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", MinPasswordLength),
		})
	}
	if in.Password != in.ConfirmPassword {
		fields = append(fields, domain.FieldError{Field: "confirm_password", Message: "does not match password"})
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

// Create provisions a new account on behalf of requesterID. Duplicate
// usernames surface as ErrDuplicateUsername.
func (s *UserService) Create(ctx context.Context, requesterID int64, in CreateUserInput) (domain.User, error) {
	if err := in.validate(); err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		Username:         strings.TrimSpace(in.Username),
		DisplayName:      strings.TrimSpace(in.DisplayName),
		Role:             in.Role,
		CredentialDigest: s.Digester.Digest(in.Password),
		PermissionTags:   in.PermissionTags,
		Email:            in.Email,
		Phone:            in.Phone,
		Department:       in.Department,
		CreatedBy:        &requesterID,
		Active:           true,
	}

	if err := s.Store.Users().Create(ctx, &user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, domain.ErrDuplicateUsername
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	s.Cache.Invalidate(cache.KeyUsers, cache.KeyKPIs)
	s.Audit.Record(ctx, &requesterID, domain.AuditUsers, domain.AuditCreation,
		fmt.Sprintf("user %s created with role %s", user.Username, user.Role))
	return user, nil
}

// List returns every account, newest first. The result is cached until the
// next user mutation.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	if users, ok := cache.Get[[]domain.User](s.Cache, cache.KeyUsers); ok {
		return users, nil
	}

	users, err := s.Store.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	cache.Put(s.Cache, cache.KeyUsers, users)
	return users, nil
}

// Get returns one account by id.
func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.Store.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// SetActive enables or disables an account. Deactivation takes effect on the
// next authentication attempt; live sessions are untouched.
func (s *UserService) SetActive(ctx context.Context, id int64, active bool) error {
	if err := s.Store.Users().SetActive(ctx, id, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("set user active: %w", err)
	}
	s.Cache.Invalidate(cache.KeyUsers, cache.KeyKPIs)
	return nil
}
