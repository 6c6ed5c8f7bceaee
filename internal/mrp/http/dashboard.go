package http

import (
	"net/http"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
)

type DashboardHandler struct {
	Dashboard *service.DashboardService
}

// ServeHTTP returns the KPI snapshot.
//
//	@Summary		Dashboard KPIs
//	@Description	Returns product counts, low-stock count, current-month sales total, inventory value and active user count. Requires the dashboard section.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	mrpsdk.DashboardResponse
//	@Router			/v1/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Dashboard.Snapshot(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mrpsdk.DashboardResponse{
		TotalProducts:    snap.TotalProducts,
		LowStockProducts: snap.LowStockProducts,
		MonthSalesTotal:  snap.MonthSalesTotal,
		InventoryValue:   snap.InventoryValue,
		ActiveUsers:      snap.ActiveUsers,
	})
}
