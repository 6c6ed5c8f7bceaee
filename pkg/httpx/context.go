package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID carries the authenticated user id as a decimal string.
	CtxKeyUserID ctxKey = "user_id"
	// CtxKeyRole carries the authenticated user's role name.
	CtxKeyRole ctxKey = "role"
)

// RoleFromContext returns the authenticated role name, or "" when the
// request is anonymous.
func RoleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}

// UserIDFromContext returns the authenticated user id as a string, or ""
// when the request is anonymous.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
