package service

import "github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"

// sectionsByRole is the full authorization policy. It is deliberately a
// static table: roles and sections are closed sets that only change with a
// deploy, and a table keeps the policy reviewable at a glance.
var sectionsByRole = map[domain.Role][]domain.Section{
	domain.RoleAdmin: {
		domain.SectionDashboard,
		domain.SectionInventory,
		domain.SectionUsers,
		domain.SectionSales,
		domain.SectionReports,
		domain.SectionConfiguration,
	},
	domain.RoleSales: {
		domain.SectionDashboard,
		domain.SectionInventory,
		domain.SectionSales,
		domain.SectionReports,
	},
	domain.RoleProduction: {
		domain.SectionDashboard,
		domain.SectionInventory,
		domain.SectionReports,
	},
	domain.RoleUser: {
		domain.SectionDashboard,
		domain.SectionInventory,
	},
	domain.RoleViewer: {
		domain.SectionDashboard,
		domain.SectionInventory,
	},
}

// Authorizer answers role/section access questions. It is stateless and
// safe for concurrent use.
type Authorizer struct{}

// SectionsFor returns the sections a role may enter, in menu order. Unknown
// roles get the minimal set rather than nothing, matching the read-tolerant
// Role contract.
func (Authorizer) SectionsFor(role domain.Role) []domain.Section {
	if sections, ok := sectionsByRole[role]; ok {
		out := make([]domain.Section, len(sections))
		copy(out, sections)
		return out
	}
	return []domain.Section{domain.SectionDashboard, domain.SectionInventory}
}

// Allowed reports whether the role may enter the section.
func (a Authorizer) Allowed(role domain.Role, section domain.Section) bool {
	for _, s := range a.SectionsFor(role) {
		if s == section {
			return true
		}
	}
	return false
}
