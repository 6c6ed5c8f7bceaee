package mrpsdk

import "time"

// Identity is the authenticated, non-secret view of an account.
type Identity struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Role           string `json:"role"`
	PermissionTags string `json:"permission_tags,omitempty"`
}

// LoginRequest carries credentials to POST /v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the minted session token and the identity it is
// bound to.
type LoginResponse struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
	Sections []string `json:"sections"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	Identity Identity `json:"identity"`
	Sections []string `json:"sections"`
}

// ChangePasswordRequest carries a password change for the current user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// CreateUserRequest provisions a new account.
type CreateUserRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	DisplayName     string `json:"display_name"`
	Role            string `json:"role"`
	PermissionTags  string `json:"permission_tags,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Department      string `json:"department,omitempty"`
}

// UserResponse is the admin view of an account. It never carries the
// credential digest.
type UserResponse struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	DisplayName    string     `json:"display_name"`
	Role           string     `json:"role"`
	PermissionTags string     `json:"permission_tags,omitempty"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Department     string     `json:"department,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	LastAccessAt   *time.Time `json:"last_access_at,omitempty"`
	Active         bool       `json:"active"`
}

// SetActiveRequest enables or disables an account.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// CreateProductRequest adds a product to the catalogue. A blank code is
// generated server-side.
type CreateProductRequest struct {
	Code          string  `json:"code,omitempty"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
	Unit          string  `json:"unit,omitempty"`
	PurchasePrice float64 `json:"purchase_price,omitempty"`
	SalePrice     float64 `json:"sale_price,omitempty"`
	StockMin      int64   `json:"stock_min,omitempty"`
	StockMax      int64   `json:"stock_max,omitempty"`
	StockCurrent  int64   `json:"stock_current,omitempty"`
	Location      string  `json:"location,omitempty"`
	SupplierID    *int64  `json:"supplier_id,omitempty"`
}

type ProductResponse struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	Unit          string    `json:"unit,omitempty"`
	PurchasePrice float64   `json:"purchase_price"`
	SalePrice     float64   `json:"sale_price"`
	StockMin      int64     `json:"stock_min"`
	StockMax      int64     `json:"stock_max"`
	StockCurrent  int64     `json:"stock_current"`
	Location      string    `json:"location,omitempty"`
	SupplierID    *int64    `json:"supplier_id,omitempty"`
	SupplierName  string    `json:"supplier_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Active        bool      `json:"active"`
}

type CreateSupplierRequest struct {
	Code         string `json:"code,omitempty"`
	Name         string `json:"name"`
	TaxID        string `json:"tax_id,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Contact      string `json:"contact,omitempty"`
	ProductType  string `json:"product_type,omitempty"`
	LeadTimeDays int64  `json:"lead_time_days,omitempty"`
	Rating       int64  `json:"rating,omitempty"`
}

type SupplierResponse struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	TaxID        string    `json:"tax_id,omitempty"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Contact      string    `json:"contact,omitempty"`
	ProductType  string    `json:"product_type,omitempty"`
	LeadTimeDays int64     `json:"lead_time_days"`
	Rating       int64     `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
	Active       bool      `json:"active"`
}

type CreateClientRequest struct {
	Code           string  `json:"code,omitempty"`
	Name           string  `json:"name"`
	DocumentType   string  `json:"document_type,omitempty"`
	DocumentNumber string  `json:"document_number,omitempty"`
	Address        string  `json:"address,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Email          string  `json:"email,omitempty"`
	CreditLimit    float64 `json:"credit_limit,omitempty"`
	Category       string  `json:"category,omitempty"`
}

type ClientResponse struct {
	ID             int64     `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	DocumentType   string    `json:"document_type,omitempty"`
	DocumentNumber string    `json:"document_number,omitempty"`
	Address        string    `json:"address,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	CreditLimit    float64   `json:"credit_limit"`
	Balance        float64   `json:"balance"`
	Category       string    `json:"category"`
	CreatedAt      time.Time `json:"created_at"`
	Active         bool      `json:"active"`
}

type SaleLineRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Discount  float64 `json:"discount,omitempty"`
}

type CreateSaleRequest struct {
	InvoiceNumber string            `json:"invoice_number,omitempty"`
	ClientID      int64             `json:"client_id"`
	Date          *time.Time        `json:"date,omitempty"`
	Subtotal      float64           `json:"subtotal"`
	Discount      float64           `json:"discount,omitempty"`
	Tax           float64           `json:"tax,omitempty"`
	Total         float64           `json:"total"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Lines         []SaleLineRequest `json:"lines"`
}

type SaleLineResponse struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Discount  float64 `json:"discount"`
	LineTotal float64 `json:"line_total"`
}

type SaleResponse struct {
	ID            int64              `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	ClientID      int64              `json:"client_id"`
	ClientName    string             `json:"client_name,omitempty"`
	Date          time.Time          `json:"date"`
	Subtotal      float64            `json:"subtotal"`
	Discount      float64            `json:"discount"`
	Tax           float64            `json:"tax"`
	Total         float64            `json:"total"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	Lines         []SaleLineResponse `json:"lines,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// DashboardResponse is the KPI snapshot the landing page renders.
type DashboardResponse struct {
	TotalProducts    int64   `json:"total_products"`
	LowStockProducts int64   `json:"low_stock_products"`
	MonthSalesTotal  float64 `json:"month_sales_total"`
	InventoryValue   float64 `json:"inventory_value"`
	ActiveUsers      int64   `json:"active_users"`
}

// HealthChecks reports the state of the service's dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type AuditEntryResponse struct {
	ID          string    `json:"id"`
	ActorUserID *int64    `json:"actor_user_id,omitempty"`
	Category    string    `json:"category"`
	Action      string    `json:"action"`
	Detail      string    `json:"detail"`
	CreatedAt   time.Time `json:"created_at"`
}
