package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/cache"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
)

// SaleService records sales and the stock movements they cause. A sale, its
// lines, its movements and the stock updates commit atomically.
type SaleService struct {
	Store store.Store
	Cache *cache.Cache
}

type SaleLineInput struct {
	ProductID int64
	Quantity  int64
	UnitPrice float64
	Discount  float64
}

type CreateSaleInput struct {
	InvoiceNumber string
	ClientID      int64
	Date          time.Time
	Subtotal      float64
	Discount      float64
	Tax           float64
	Total         float64
	PaymentMethod string
	Notes         string
	Lines         []SaleLineInput
}

func (in CreateSaleInput) validate() error {
	var fields []domain.FieldError
	if in.ClientID <= 0 {
		fields = append(fields, domain.FieldError{Field: "client_id", Message: "is required"})
	}
	if len(in.Lines) == 0 {
		fields = append(fields, domain.FieldError{Field: "lines", Message: "at least one line is required"})
	}
	for _, l := range in.Lines {
		if l.ProductID <= 0 || l.Quantity <= 0 {
			fields = append(fields, domain.FieldError{
				Field: "lines", Message: "every line needs a product and a positive quantity",
			})
			break
		}
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

// Create records a sale performed by sellerID. For each line it writes a
// SALE stock movement carrying the before and after levels and decrements
// the product's stock. Everything happens in one transaction; a failure on
// any line rolls the whole sale back.
func (s *SaleService) Create(ctx context.Context, sellerID int64, in CreateSaleInput) (domain.Sale, error) {
	if err := in.validate(); err != nil {
		return domain.Sale{}, err
	}

	invoice := strings.TrimSpace(in.InvoiceNumber)
	if invoice == "" {
		invoice = generateCode("VEN", time.Now().UTC())
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	sale := domain.Sale{
		InvoiceNumber: invoice,
		ClientID:      in.ClientID,
		Date:          date,
		Subtotal:      in.Subtotal,
		Discount:      in.Discount,
		Tax:           in.Tax,
		Total:         in.Total,
		Status:        domain.SaleStatusPending,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		SellerID:      &sellerID,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Sales().Create(ctx, &sale); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.NewValidationError(domain.FieldError{
					Field: "invoice_number", Message: "is already in use",
				})
			}
			return fmt.Errorf("create sale: %w", err)
		}

		for _, l := range in.Lines {
			line := domain.SaleLine{
				SaleID:    sale.ID,
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
				Discount:  l.Discount,
				LineTotal: float64(l.Quantity)*l.UnitPrice - l.Discount,
			}
			if err := tx.Sales().CreateLine(ctx, &line); err != nil {
				return fmt.Errorf("create sale line: %w", err)
			}
			sale.Lines = append(sale.Lines, line)

			product, err := tx.Products().GetByID(ctx, l.ProductID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return domain.NewValidationError(domain.FieldError{
						Field: "lines", Message: fmt.Sprintf("product %d does not exist", l.ProductID),
					})
				}
				return fmt.Errorf("load product %d: %w", l.ProductID, err)
			}

			after := product.StockCurrent - l.Quantity
			movement := domain.StockMovement{
				Type:        domain.MovementTypeSale,
				RefID:       &sale.ID,
				RefType:     "sale",
				ProductID:   product.ID,
				Quantity:    l.Quantity,
				Unit:        product.Unit,
				StockBefore: product.StockCurrent,
				StockAfter:  after,
				ActorID:     &sellerID,
				Notes:       fmt.Sprintf("sale %s", invoice),
			}
			if err := tx.Movements().Create(ctx, &movement); err != nil {
				return fmt.Errorf("record stock movement: %w", err)
			}
			if err := tx.Products().UpdateStock(ctx, product.ID, after); err != nil {
				return fmt.Errorf("update stock for product %d: %w", product.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Sale{}, err
	}

	s.Cache.Invalidate(cache.KeyRecentSales, cache.KeyProducts, cache.KeyLowStock, cache.KeyKPIs)
	return sale, nil
}

// ListRecent returns the latest sales with client names joined, cached until
// the next sale.
func (s *SaleService) ListRecent(ctx context.Context, limit int) ([]domain.Sale, error) {
	if limit <= 0 {
		limit = 50
	}

	if sales, ok := cache.Get[[]domain.Sale](s.Cache, cache.KeyRecentSales); ok {
		return sales, nil
	}

	sales, err := s.Store.Sales().ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	cache.Put(s.Cache, cache.KeyRecentSales, sales)
	return sales, nil
}
