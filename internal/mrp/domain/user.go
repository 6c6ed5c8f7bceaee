package domain

import "time"

// Role is the closed set of categories that drive authorization decisions.
// Unknown values are tolerated on read and fall back to the minimal
// capability set.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSales      Role = "sales"
	RoleProduction Role = "production"
	RoleUser       Role = "user"
	RoleViewer     Role = "viewer"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleProduction, RoleUser, RoleViewer:
		return true
	}
	return false
}

// Section is a top-level functional area of the application.
type Section string

const (
	SectionDashboard     Section = "dashboard"
	SectionInventory     Section = "inventory"
	SectionUsers         Section = "users"
	SectionSales         Section = "sales"
	SectionReports       Section = "reports"
	SectionConfiguration Section = "configuration"
)

type User struct {
	ID               int64
	Username         string // unique, immutable after creation
	DisplayName      string
	Role             Role
	CredentialDigest string // 64-hex SHA-256, never exposed past the store/service boundary
	PermissionTags   string // stored but never consulted by authorization
	Email            string
	Phone            string
	Department       string
	CreatedBy        *int64 // admin that created this record, lookup only
	CreatedAt        time.Time
	LastAccessAt     *time.Time
	Active           bool
}

// Identity is the authenticated, non-secret view of a User. It is what
// sessions hold and what the API returns; it never carries the digest.
type Identity struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Role           Role   `json:"role"`
	PermissionTags string `json:"permission_tags,omitempty"`
}

// Identity projects the public fields of a user.
func (u User) Identity() Identity {
	return Identity{
		ID:             u.ID,
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		Role:           u.Role,
		PermissionTags: u.PermissionTags,
	}
}
