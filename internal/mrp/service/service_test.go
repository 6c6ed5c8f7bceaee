package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/cache"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store/drivers/sqlite"
	"github.com/alejomzlz/panaderia-mrp/pkg/cryptox"
)

var testDigester = cryptox.Digester{
	Salt:   "panaderia-salt-2024-",
	Secret: "test-secret",
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// testServices wires the full service graph over a fresh in-memory store.
type testServices struct {
	Store     store.Store
	Cache     *cache.Cache
	Audit     *AuditService
	Auth      *AuthService
	Sessions  *SessionService
	Bootstrap *BootstrapService
	Users     *UserService
	Products  *ProductService
	Suppliers *SupplierService
	Clients   *ClientService
	Sales     *SaleService
	Dashboard *DashboardService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	st := newTestStore(t)
	c := cache.New()
	audit := &AuditService{Store: st}
	auth := &AuthService{Store: st, Digester: testDigester, Audit: audit}

	return &testServices{
		Store:     st,
		Cache:     c,
		Audit:     audit,
		Auth:      auth,
		Sessions:  &SessionService{Auth: auth, Audit: audit},
		Bootstrap: &BootstrapService{Store: st, Digester: testDigester, Audit: audit, AdminPassword: "Admin2024!"},
		Users:     &UserService{Store: st, Digester: testDigester, Cache: c, Audit: audit},
		Products:  &ProductService{Store: st, Cache: c},
		Suppliers: &SupplierService{Store: st, Cache: c},
		Clients:   &ClientService{Store: st, Cache: c},
		Sales:     &SaleService{Store: st, Cache: c},
		Dashboard: &DashboardService{Store: st, Cache: c},
	}
}

// mustCreateUser provisions an account through the user service, bypassing
// validation concerns that individual tests do not care about.
func (ts *testServices) mustCreateUser(t *testing.T, username, password string, role domain.Role) int64 {
	t.Helper()

	user, err := ts.Users.Create(context.Background(), 1, CreateUserInput{
		Username:        username,
		Password:        password,
		ConfirmPassword: password,
		DisplayName:     "Test " + username,
		Role:            role,
	})
	require.NoError(t, err)
	return user.ID
}
