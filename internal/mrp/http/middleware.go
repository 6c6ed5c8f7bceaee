package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
	"github.com/alejomzlz/panaderia-mrp/pkg/idx"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
)

type sessionCtxKey string

const ctxKeySession sessionCtxKey = "session"

// sessionFromContext returns the authenticated session placed by
// AuthnMiddleware.
func sessionFromContext(ctx context.Context) (service.Session, bool) {
	sess, ok := ctx.Value(ctxKeySession).(service.Session)
	return sess, ok
}

// AuthnMiddleware resolves the bearer session token and injects the session
// into the request context. Requests with no token, a malformed token or an
// unknown token are rejected uniformly.
func AuthnMiddleware(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				mrpsdk.ErrUnauthorized.WriteError(w)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			token, err := idx.Parse(raw)
			if err != nil {
				mrpsdk.ErrUnauthorized.WriteError(w)
				return
			}

			sess, ok := sessions.Current(token)
			if !ok {
				mrpsdk.ErrUnauthorized.WriteError(w)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, sess)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID,
				strconv.FormatInt(sess.Identity.ID, 10))
			ctx = context.WithValue(ctx, httpx.CtxKeyRole, string(sess.Identity.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSection rejects authenticated requests whose role does not grant
// access to the given section. Must run inside AuthnMiddleware.
func RequireSection(authz service.Authorizer, section domain.Section) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := sessionFromContext(r.Context())
			if !ok {
				mrpsdk.ErrUnauthorized.WriteError(w)
				return
			}
			if !authz.Allowed(sess.Identity.Role, section) {
				mrpsdk.ErrForbidden.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
