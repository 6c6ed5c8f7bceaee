package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
	"github.com/alejomzlz/panaderia-mrp/pkg/slogx"

	_ "github.com/alejomzlz/panaderia-mrp/api/mrp" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store      store.Store
	Authorizer service.Authorizer

	AuthService      *service.AuthService
	SessionService   *service.SessionService
	UserService      *service.UserService
	ProductService   *service.ProductService
	SupplierService  *service.SupplierService
	ClientService    *service.ClientService
	SaleService      *service.SaleService
	DashboardService *service.DashboardService
	AuditService     *service.AuditService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerInventory()
	r.registerSales()
	r.registerDashboard()
	r.registerAudit()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Panaderia MRP API
//	@version		0.1.0
//	@description	Resource planning service for a bakery: authentication with role-based
//	@description	section access, product and supplier catalogues, clients, sales with
//	@description	stock tracking, dashboard KPIs and an audit log.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Opaque session token from /v1/auth/login. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with authentication, section authorization and a per-user
// rate limit.
func (r *Router) secured(h http.Handler, section domain.Section, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		AuthnMiddleware(r.SessionService),
		RequireSection(r.Authorizer, section),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	// Login is rate limited by IP plus the submitted username, so neither a
	// single address nor a single account can be hammered.
	login := &LoginHandler{Sessions: r.SessionService, Authorizer: r.Authorizer}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(login,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	logout := &LogoutHandler{Sessions: r.SessionService}
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logout,
			AuthnMiddleware(r.SessionService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	session := &SessionHandler{Authorizer: r.Authorizer}
	r.Mux.Handle("GET /v1/auth/session",
		httpx.Chain(session,
			AuthnMiddleware(r.SessionService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	password := &PasswordHandler{Auth: r.AuthService}
	r.Mux.Handle("POST /v1/auth/password",
		httpx.Chain(password,
			AuthnMiddleware(r.SessionService),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Users: r.UserService}

	r.Mux.Handle("POST /v1/users",
		r.secured(http.HandlerFunc(h.HandleCreate), domain.SectionUsers, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/users",
		r.secured(http.HandlerFunc(h.HandleList), domain.SectionUsers, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/users/{id}/active",
		r.secured(http.HandlerFunc(h.HandleSetActive), domain.SectionUsers, httpx.ModerateLimit))
}

func (r *Router) registerInventory() {
	products := &ProductsHandler{Products: r.ProductService}
	suppliers := &SuppliersHandler{Suppliers: r.SupplierService}

	r.Mux.Handle("POST /v1/products",
		r.secured(http.HandlerFunc(products.HandleCreate), domain.SectionInventory, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/products",
		r.secured(http.HandlerFunc(products.HandleList), domain.SectionInventory, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/products/low-stock",
		r.secured(http.HandlerFunc(products.HandleLowStock), domain.SectionInventory, httpx.LenientLimit))

	r.Mux.Handle("POST /v1/suppliers",
		r.secured(http.HandlerFunc(suppliers.HandleCreate), domain.SectionInventory, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/suppliers",
		r.secured(http.HandlerFunc(suppliers.HandleList), domain.SectionInventory, httpx.LenientLimit))
}

func (r *Router) registerSales() {
	clients := &ClientsHandler{Clients: r.ClientService}
	sales := &SalesHandler{Sales: r.SaleService}

	r.Mux.Handle("POST /v1/clients",
		r.secured(http.HandlerFunc(clients.HandleCreate), domain.SectionSales, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/clients",
		r.secured(http.HandlerFunc(clients.HandleList), domain.SectionSales, httpx.LenientLimit))

	r.Mux.Handle("POST /v1/sales",
		r.secured(http.HandlerFunc(sales.HandleCreate), domain.SectionSales, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/sales",
		r.secured(http.HandlerFunc(sales.HandleList), domain.SectionSales, httpx.LenientLimit))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{Dashboard: r.DashboardService}
	r.Mux.Handle("GET /v1/dashboard",
		r.secured(h, domain.SectionDashboard, httpx.LenientLimit))
}

func (r *Router) registerAudit() {
	h := &AuditHandler{Audit: r.AuditService}
	r.Mux.Handle("GET /v1/audit",
		r.secured(h, domain.SectionConfiguration, httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
