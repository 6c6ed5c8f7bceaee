package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

func TestSectionsForCoversEveryRole(t *testing.T) {
	var az Authorizer

	require.Equal(t, []domain.Section{
		domain.SectionDashboard,
		domain.SectionInventory,
		domain.SectionUsers,
		domain.SectionSales,
		domain.SectionReports,
		domain.SectionConfiguration,
	}, az.SectionsFor(domain.RoleAdmin))

	require.Equal(t, []domain.Section{
		domain.SectionDashboard,
		domain.SectionInventory,
		domain.SectionSales,
		domain.SectionReports,
	}, az.SectionsFor(domain.RoleSales))

	require.Equal(t, []domain.Section{
		domain.SectionDashboard,
		domain.SectionInventory,
		domain.SectionReports,
	}, az.SectionsFor(domain.RoleProduction))

	minimal := []domain.Section{domain.SectionDashboard, domain.SectionInventory}
	require.Equal(t, minimal, az.SectionsFor(domain.RoleUser))
	require.Equal(t, minimal, az.SectionsFor(domain.RoleViewer))
}

func TestSectionsForUnknownRoleFallsBack(t *testing.T) {
	var az Authorizer

	sections := az.SectionsFor(domain.Role("intern"))
	require.Equal(t, []domain.Section{domain.SectionDashboard, domain.SectionInventory}, sections)
}

func TestAllowed(t *testing.T) {
	var az Authorizer

	require.True(t, az.Allowed(domain.RoleAdmin, domain.SectionConfiguration))
	require.True(t, az.Allowed(domain.RoleSales, domain.SectionSales))
	require.False(t, az.Allowed(domain.RoleSales, domain.SectionUsers))
	require.False(t, az.Allowed(domain.RoleProduction, domain.SectionSales))
	require.False(t, az.Allowed(domain.RoleViewer, domain.SectionReports))
	require.False(t, az.Allowed(domain.Role("intern"), domain.SectionUsers))
	require.True(t, az.Allowed(domain.Role("intern"), domain.SectionDashboard))
}

func TestSectionsForReturnsCopy(t *testing.T) {
	var az Authorizer

	first := az.SectionsFor(domain.RoleAdmin)
	first[0] = domain.SectionUsers

	second := az.SectionsFor(domain.RoleAdmin)
	require.Equal(t, domain.SectionDashboard, second[0])
}
