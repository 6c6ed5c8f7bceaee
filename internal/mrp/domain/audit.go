package domain

import "time"

// AuditCategory groups audit entries by subsystem.
type AuditCategory string

const (
	AuditAuth  AuditCategory = "AUTH"
	AuditUsers AuditCategory = "USERS"
)

// AuditAction is the event recorded by an audit entry.
type AuditAction string

const (
	AuditLoginSuccess   AuditAction = "LOGIN_SUCCESS"
	AuditLoginFailure   AuditAction = "LOGIN_FAILURE"
	AuditLogout         AuditAction = "LOGOUT"
	AuditPasswordChange AuditAction = "PASSWORD_CHANGE"
	AuditCreation       AuditAction = "CREATION"
)

// AuditEntry is a single audit log record. Detail must never contain a
// plaintext password or a credential digest.
type AuditEntry struct {
	ID          string // ULID
	ActorUserID *int64 // nil for anonymous failures
	Category    AuditCategory
	Action      AuditAction
	Detail      string
	CreatedAt   time.Time
}
