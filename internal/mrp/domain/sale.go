package domain

import "time"

// SaleStatusPending is the state every stored sale starts in. The service
// records what was submitted; there is no order workflow on top.
const SaleStatusPending = "PENDING"

type Sale struct {
	ID            int64
	InvoiceNumber string // unique, generated when not supplied
	ClientID      int64
	ClientName    string // joined on reads
	Date          time.Time
	Subtotal      float64
	Discount      float64
	Tax           float64
	Total         float64
	Status        string
	PaymentMethod string
	Notes         string
	SellerID      *int64
	Lines         []SaleLine
	CreatedAt     time.Time
}

type SaleLine struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int64
	UnitPrice float64
	Discount  float64
	LineTotal float64
}

// StockMovement records one inventory change, with the stock level before
// and after so the history reads without replaying it.
type StockMovement struct {
	ID          int64
	Type        string // e.g. "SALE", "PURCHASE", "ADJUSTMENT"
	RefID       *int64 // row the movement originates from, per RefType
	RefType     string
	ProductID   int64
	Quantity    int64
	Unit        string
	StockBefore int64
	StockAfter  int64
	ActorID     *int64
	Notes       string
	CreatedAt   time.Time
}

const (
	MovementTypeSale       = "SALE"
	MovementTypePurchase   = "PURCHASE"
	MovementTypeAdjustment = "ADJUSTMENT"
)
