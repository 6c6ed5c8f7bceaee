package domain

import "time"

// Product categories and measurement units match the values the intake forms
// offer; the store does not enforce the lists.
const (
	ProductCategoryFinished     = "FINISHED"
	ProductCategorySemiFinished = "SEMI_FINISHED"
	ProductCategoryRawMaterial  = "RAW_MATERIAL"
	ProductCategorySupply       = "SUPPLY"
	ProductCategoryOther        = "OTHER"
)

type Product struct {
	ID            int64
	Code          string // unique, generated when not supplied
	Name          string
	Description   string
	Category      string
	Unit          string
	PurchasePrice float64
	SalePrice     float64
	StockMin      int64
	StockMax      int64
	StockCurrent  int64
	Location      string
	SupplierID    *int64
	SupplierName  string // joined on reads, not persisted on the product row
	CreatedBy     *int64
	CreatedAt     time.Time
	Active        bool
}

// BelowMinimum reports whether current stock is under the configured minimum.
func (p Product) BelowMinimum() bool {
	return p.StockCurrent < p.StockMin
}
