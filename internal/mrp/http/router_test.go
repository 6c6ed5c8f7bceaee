package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/cache"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store/drivers/sqlite"
	"github.com/alejomzlz/panaderia-mrp/pkg/cryptox"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
)

// newTestServer stands up the full HTTP stack over an in-memory store, with
// the bootstrap admin already provisioned.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	digester := cryptox.Digester{Salt: "panaderia-salt-2024-", Secret: "test-secret"}
	c := cache.New()

	audit := &service.AuditService{Store: st}
	auth := &service.AuthService{Store: st, Digester: digester, Audit: audit}
	sessions := &service.SessionService{Auth: auth, Audit: audit}

	bootstrap := &service.BootstrapService{
		Store: st, Digester: digester, Audit: audit, AdminPassword: "Admin2024!",
	}
	require.NoError(t, bootstrap.EnsureAdmin(context.Background()))

	router := NewRouter("test", st, slog.Default())
	router.AuthService = auth
	router.SessionService = sessions
	router.UserService = &service.UserService{Store: st, Digester: digester, Cache: c, Audit: audit}
	router.ProductService = &service.ProductService{Store: st, Cache: c}
	router.SupplierService = &service.SupplierService{Store: st, Cache: c}
	router.ClientService = &service.ClientService{Store: st, Cache: c}
	router.SaleService = &service.SaleService{Store: st, Cache: c}
	router.DashboardService = &service.DashboardService{Store: st, Cache: c}
	router.AuditService = audit
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func loginAdmin(t *testing.T, srv *httptest.Server) *mrpsdk.Session {
	t.Helper()

	sess, err := mrpsdk.NewClient(srv.URL).Login(context.Background(), "admin", "Admin2024!")
	require.NoError(t, err)
	return sess
}

func TestHealthEndpoints(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	client := mrpsdk.NewClient(srv.URL)

	require.NoError(t, client.Livez(ctx))
	require.NoError(t, client.Readyz(ctx))
}

func TestLoginFlow(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	client := mrpsdk.NewClient(srv.URL)

	t.Run("bad credentials are 401", func(t *testing.T) {
		_, err := client.Login(ctx, "admin", "wrong")
		var apiErr *mrpsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, mrpsdk.ErrorCodeAuthFailed, apiErr.Code)
	})

	t.Run("login returns identity and sections", func(t *testing.T) {
		sess := loginAdmin(t, srv)
		require.Equal(t, "admin", sess.Identity().Username)
		require.Equal(t, "admin", sess.Identity().Role)
		require.Contains(t, sess.Sections(), "users")
		require.Contains(t, sess.Sections(), "configuration")
	})

	t.Run("session endpoint and logout", func(t *testing.T) {
		sess := loginAdmin(t, srv)

		state, err := sess.GetSession(ctx)
		require.NoError(t, err)
		require.Equal(t, "admin", state.Identity.Username)

		require.NoError(t, sess.Logout(ctx))

		_, err = sess.GetSession(ctx)
		var apiErr *mrpsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, mrpsdk.ErrorCodeUnauthorized, apiErr.Code)
	})
}

func TestSectionGating(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	_, err := admin.CreateUser(ctx, mrpsdk.CreateUserRequest{
		Username: "vendedor", Password: "ventas123", ConfirmPassword: "ventas123",
		DisplayName: "Vendedor Uno", Role: "sales",
	})
	require.NoError(t, err)
	_, err = admin.CreateUser(ctx, mrpsdk.CreateUserRequest{
		Username: "panadero", Password: "masa1234", ConfirmPassword: "masa1234",
		DisplayName: "Panadero Uno", Role: "production",
	})
	require.NoError(t, err)

	client := mrpsdk.NewClient(srv.URL)
	sales, err := client.Login(ctx, "vendedor", "ventas123")
	require.NoError(t, err)
	production, err := client.Login(ctx, "panadero", "masa1234")
	require.NoError(t, err)

	forbidden := func(t *testing.T, err error) {
		t.Helper()
		var apiErr *mrpsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		require.Equal(t, mrpsdk.ErrorCodeForbidden, apiErr.Code)
	}

	t.Run("sales role can sell but not manage users", func(t *testing.T) {
		_, err := sales.ListClients(ctx)
		require.NoError(t, err)

		_, err = sales.ListUsers(ctx)
		forbidden(t, err)
	})

	t.Run("production role cannot reach sales", func(t *testing.T) {
		_, err := production.ListProducts(ctx)
		require.NoError(t, err)

		_, err = production.ListSales(ctx)
		forbidden(t, err)
	})

	t.Run("unauthenticated requests are 401", func(t *testing.T) {
		anonymous := mrpsdk.NewClient(srv.URL).NewSessionFromToken("")
		_, err := anonymous.ListProducts(ctx)
		var apiErr *mrpsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, mrpsdk.ErrorCodeUnauthorized, apiErr.Code)
	})
}

func TestUserManagementAPI(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	t.Run("validation failures carry fields", func(t *testing.T) {
		_, err := admin.CreateUser(ctx, mrpsdk.CreateUserRequest{
			Username: "x", Password: "abc", ConfirmPassword: "abc",
			DisplayName: "X", Role: "sales",
		})
		var apiErr *mrpsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, mrpsdk.ErrorCodeValidationFailed, apiErr.Code)
		require.NotEmpty(t, apiErr.Fields)
	})

	t.Run("duplicate username is 409", func(t *testing.T) {
		_, err := admin.CreateUser(ctx, mrpsdk.CreateUserRequest{
			Username: "admin", Password: "whatever1", ConfirmPassword: "whatever1",
			DisplayName: "Impostor", Role: "admin",
		})
		var apiErr *mrpsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	})

	t.Run("deactivation blocks the next login", func(t *testing.T) {
		created, err := admin.CreateUser(ctx, mrpsdk.CreateUserRequest{
			Username: "temporal", Password: "temporal1", ConfirmPassword: "temporal1",
			DisplayName: "Temporal", Role: "viewer",
		})
		require.NoError(t, err)
		require.NoError(t, admin.SetUserActive(ctx, created.ID, false))

		_, err = mrpsdk.NewClient(srv.URL).Login(ctx, "temporal", "temporal1")
		var apiErr *mrpsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, mrpsdk.ErrorCodeAuthFailed, apiErr.Code)
	})

	t.Run("listing never exposes digests", func(t *testing.T) {
		users, err := admin.ListUsers(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, users)
	})
}

func TestPasswordChangeAPI(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	_, err := admin.CreateUser(ctx, mrpsdk.CreateUserRequest{
		Username: "cajero", Password: "inicial1", ConfirmPassword: "inicial1",
		DisplayName: "Cajero", Role: "user",
	})
	require.NoError(t, err)

	client := mrpsdk.NewClient(srv.URL)
	sess, err := client.Login(ctx, "cajero", "inicial1")
	require.NoError(t, err)

	err = sess.ChangePassword(ctx, mrpsdk.ChangePasswordRequest{
		CurrentPassword: "inicial1",
		NewPassword:     "rotada99",
		ConfirmPassword: "rotada99",
	})
	require.NoError(t, err)

	_, err = client.Login(ctx, "cajero", "inicial1")
	require.Error(t, err)
	_, err = client.Login(ctx, "cajero", "rotada99")
	require.NoError(t, err)
}

func TestSalesAndDashboardAPI(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	supplier, err := admin.CreateSupplier(ctx, mrpsdk.CreateSupplierRequest{Name: "Molinos SA"})
	require.NoError(t, err)

	product, err := admin.CreateProduct(ctx, mrpsdk.CreateProductRequest{
		Name: "Pan Frances", Unit: "kg", PurchasePrice: 1, SalePrice: 3,
		StockMin: 10, StockCurrent: 100, SupplierID: &supplier.ID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, product.Code)

	client, err := admin.CreateClient(ctx, mrpsdk.CreateClientRequest{Name: "Hotel Plaza"})
	require.NoError(t, err)
	require.Equal(t, "REGULAR", client.Category)

	sale, err := admin.CreateSale(ctx, mrpsdk.CreateSaleRequest{
		ClientID: client.ID, Subtotal: 30, Total: 30,
		Lines: []mrpsdk.SaleLineRequest{{ProductID: product.ID, Quantity: 10, UnitPrice: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, "PENDING", sale.Status)

	products, err := admin.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, int64(90), products[0].StockCurrent)
	require.Equal(t, "Molinos SA", products[0].SupplierName)

	snap, err := admin.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), snap.TotalProducts)
	require.Equal(t, float64(30), snap.MonthSalesTotal)
	require.Equal(t, float64(90), snap.InventoryValue)

	entries, err := admin.AuditLog(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
}

func TestErrorEnvelopeIsStable(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	_, err := admin.CreateSale(ctx, mrpsdk.CreateSaleRequest{})
	var apiErr *mrpsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.Equal(t, mrpsdk.ErrorCodeValidationFailed, apiErr.Code)
}
