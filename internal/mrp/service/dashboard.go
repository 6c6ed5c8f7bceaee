package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/cache"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
)

// DashboardService computes the landing page KPIs.
type DashboardService struct {
	Store store.Store
	Cache *cache.Cache
}

// Snapshot returns the current KPI set. The snapshot is cached and recomputed
// only after a mutation invalidates it, so repeated dashboard loads do not
// rescan the tables.
func (s *DashboardService) Snapshot(ctx context.Context) (domain.KPISnapshot, error) {
	if snap, ok := cache.Get[domain.KPISnapshot](s.Cache, cache.KeyKPIs); ok {
		return snap, nil
	}

	var snap domain.KPISnapshot
	var err error

	if snap.TotalProducts, err = s.Store.Metrics().CountActiveProducts(ctx); err != nil {
		return domain.KPISnapshot{}, fmt.Errorf("count products: %w", err)
	}
	if snap.LowStockProducts, err = s.Store.Metrics().CountLowStockProducts(ctx); err != nil {
		return domain.KPISnapshot{}, fmt.Errorf("count low stock: %w", err)
	}
	if snap.InventoryValue, err = s.Store.Metrics().InventoryValue(ctx); err != nil {
		return domain.KPISnapshot{}, fmt.Errorf("inventory value: %w", err)
	}
	if snap.MonthSalesTotal, err = s.Store.Sales().TotalSince(ctx, startOfMonth(time.Now().UTC())); err != nil {
		return domain.KPISnapshot{}, fmt.Errorf("month sales: %w", err)
	}
	if snap.ActiveUsers, err = s.Store.Users().CountActive(ctx); err != nil {
		return domain.KPISnapshot{}, fmt.Errorf("count users: %w", err)
	}

	cache.Put(s.Cache, cache.KeyKPIs, snap)
	return snap, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
