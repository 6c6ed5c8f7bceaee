package mrpsdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client reaches the MRP service's public surface and performs the login
// flow. Authenticated operations live on Session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Livez checks process liveness.
func (c *Client) Livez(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/livez", "", nil, nil)
}

// Readyz checks that the service can reach its database.
func (c *Client) Readyz(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/readyz", "", nil, nil)
}

// Login authenticates and returns a Session bound to the minted token.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", "",
		LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}

	return &Session{client: c, token: resp.Token, identity: resp.Identity, sections: resp.Sections}, nil
}

// Session is an authenticated presence against the service. It is valid
// until Logout or a server restart; there is no refresh protocol.
type Session struct {
	client   *Client
	token    string
	identity Identity
	sections []string
}

// Token returns the opaque session token, for storage or manual reuse.
func (s *Session) Token() string { return s.token }

// Identity returns the identity the session was minted for.
func (s *Session) Identity() Identity { return s.identity }

// Sections returns the sections the session's role may enter.
func (s *Session) Sections() []string { return s.sections }

// NewSessionFromToken rebuilds a Session around a previously stored token.
// The identity is refetched on the next GetSession call.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// GetSession fetches the current session state from the server.
func (s *Session) GetSession(ctx context.Context) (SessionResponse, error) {
	var resp SessionResponse
	if err := s.client.do(ctx, http.MethodGet, "/v1/auth/session", s.token, nil, &resp); err != nil {
		return SessionResponse{}, err
	}
	s.identity = resp.Identity
	s.sections = resp.Sections
	return resp, nil
}

// Logout ends the session server-side. The Session must not be used after.
func (s *Session) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/v1/auth/logout", s.token, nil, nil)
}

// ChangePassword rotates the current user's password.
func (s *Session) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return s.client.do(ctx, http.MethodPost, "/v1/auth/password", s.token, req, nil)
}

// CreateUser provisions an account. Requires the users section.
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	var resp UserResponse
	err := s.client.do(ctx, http.MethodPost, "/v1/users", s.token, req, &resp)
	return resp, err
}

// ListUsers returns every account. Requires the users section.
func (s *Session) ListUsers(ctx context.Context) ([]UserResponse, error) {
	var resp []UserResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/users", s.token, nil, &resp)
	return resp, err
}

// SetUserActive enables or disables an account. Requires the users section.
func (s *Session) SetUserActive(ctx context.Context, userID int64, active bool) error {
	path := fmt.Sprintf("/v1/users/%d/active", userID)
	return s.client.do(ctx, http.MethodPut, path, s.token, SetActiveRequest{Active: active}, nil)
}

// CreateProduct adds a product. Requires the inventory section.
func (s *Session) CreateProduct(ctx context.Context, req CreateProductRequest) (ProductResponse, error) {
	var resp ProductResponse
	err := s.client.do(ctx, http.MethodPost, "/v1/products", s.token, req, &resp)
	return resp, err
}

// ListProducts returns the active catalogue. Requires the inventory section.
func (s *Session) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	var resp []ProductResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/products", s.token, nil, &resp)
	return resp, err
}

// LowStockProducts returns active products below their stock minimum.
func (s *Session) LowStockProducts(ctx context.Context) ([]ProductResponse, error) {
	var resp []ProductResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/products/low-stock", s.token, nil, &resp)
	return resp, err
}

// CreateSupplier adds a supplier. Requires the inventory section.
func (s *Session) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (SupplierResponse, error) {
	var resp SupplierResponse
	err := s.client.do(ctx, http.MethodPost, "/v1/suppliers", s.token, req, &resp)
	return resp, err
}

// ListSuppliers returns active suppliers. Requires the inventory section.
func (s *Session) ListSuppliers(ctx context.Context) ([]SupplierResponse, error) {
	var resp []SupplierResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/suppliers", s.token, nil, &resp)
	return resp, err
}

// CreateClient adds a client. Requires the sales section.
func (s *Session) CreateClient(ctx context.Context, req CreateClientRequest) (ClientResponse, error) {
	var resp ClientResponse
	err := s.client.do(ctx, http.MethodPost, "/v1/clients", s.token, req, &resp)
	return resp, err
}

// ListClients returns active clients. Requires the sales section.
func (s *Session) ListClients(ctx context.Context) ([]ClientResponse, error) {
	var resp []ClientResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/clients", s.token, nil, &resp)
	return resp, err
}

// CreateSale records a sale with its lines. Requires the sales section.
func (s *Session) CreateSale(ctx context.Context, req CreateSaleRequest) (SaleResponse, error) {
	var resp SaleResponse
	err := s.client.do(ctx, http.MethodPost, "/v1/sales", s.token, req, &resp)
	return resp, err
}

// ListSales returns recent sales. Requires the sales section.
func (s *Session) ListSales(ctx context.Context) ([]SaleResponse, error) {
	var resp []SaleResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/sales", s.token, nil, &resp)
	return resp, err
}

// Dashboard returns the KPI snapshot. Requires the dashboard section.
func (s *Session) Dashboard(ctx context.Context) (DashboardResponse, error) {
	var resp DashboardResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/dashboard", s.token, nil, &resp)
	return resp, err
}

// AuditLog returns recent audit entries. Requires the configuration section.
func (s *Session) AuditLog(ctx context.Context) ([]AuditEntryResponse, error) {
	var resp []AuditEntryResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/audit", s.token, nil, &resp)
	return resp, err
}
