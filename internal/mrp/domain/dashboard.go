package domain

// KPISnapshot is the dashboard's set of aggregate metrics, computed over the
// live tables and cached until a relevant mutation invalidates it.
type KPISnapshot struct {
	TotalProducts    int64   `json:"total_products"`
	LowStockProducts int64   `json:"low_stock_products"`
	MonthSalesTotal  float64 `json:"month_sales_total"`
	InventoryValue   float64 `json:"inventory_value"`
	ActiveUsers      int64   `json:"active_users"`
}
