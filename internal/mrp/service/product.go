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

// ProductService manages the product catalogue and its stock levels.
type ProductService struct {
	Store store.Store
	Cache *cache.Cache
}

// CreateProductInput mirrors the intake form. Code is optional; a blank code
// is generated as PROD-YYYYMMDD-XXXXXX.
type CreateProductInput struct {
	Code          string
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
}

func (in CreateProductInput) validate() error {
	var fields []domain.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "is required"})
	}
	if in.PurchasePrice < 0 || in.SalePrice < 0 {
		fields = append(fields, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	if in.StockMin < 0 || in.StockCurrent < 0 {
		fields = append(fields, domain.FieldError{Field: "stock", Message: "must not be negative"})
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

// Create stores a new product created by requesterID.
func (s *ProductService) Create(ctx context.Context, requesterID int64, in CreateProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	code := strings.TrimSpace(in.Code)
	if code == "" {
		code = generateCode("PROD", time.Now().UTC())
	}

	product := domain.Product{
		Code:          code,
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Category:      in.Category,
		Unit:          in.Unit,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		StockMin:      in.StockMin,
		StockMax:      in.StockMax,
		StockCurrent:  in.StockCurrent,
		Location:      in.Location,
		SupplierID:    in.SupplierID,
		CreatedBy:     &requesterID,
		Active:        true,
	}

	if err := s.Store.Products().Create(ctx, &product); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Product{}, domain.NewValidationError(domain.FieldError{
				Field: "code", Message: "is already in use",
			})
		}
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.Cache.Invalidate(cache.KeyProducts, cache.KeyLowStock, cache.KeyKPIs)
	return product, nil
}

// ListActive returns the active catalogue, supplier names joined, cached
// until the next product or stock mutation.
func (s *ProductService) ListActive(ctx context.Context) ([]domain.Product, error) {
	if products, ok := cache.Get[[]domain.Product](s.Cache, cache.KeyProducts); ok {
		return products, nil
	}

	products, err := s.Store.Products().ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	cache.Put(s.Cache, cache.KeyProducts, products)
	return products, nil
}

// LowStock returns active products below their stock minimum.
func (s *ProductService) LowStock(ctx context.Context) ([]domain.Product, error) {
	if products, ok := cache.Get[[]domain.Product](s.Cache, cache.KeyLowStock); ok {
		return products, nil
	}

	products, err := s.Store.Products().ListBelowMinimum(ctx)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}

	cache.Put(s.Cache, cache.KeyLowStock, products)
	return products, nil
}

// Get returns a product by id.
func (s *ProductService) Get(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.Store.Products().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}
