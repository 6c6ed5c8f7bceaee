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

// SupplierService manages the supplier directory.
type SupplierService struct {
	Store store.Store
	Cache *cache.Cache
}

type CreateSupplierInput struct {
	Code         string
	Name         string
	TaxID        string
	Address      string
	Phone        string
	Email        string
	Contact      string
	ProductType  string
	LeadTimeDays int64
	Rating       int64
}

// Create stores a new supplier. A blank code is generated as
// PROV-YYYYMMDD-XXXXXX and a zero rating defaults to 5.
func (s *SupplierService) Create(ctx context.Context, requesterID int64, in CreateSupplierInput) (domain.Supplier, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Supplier{}, domain.NewValidationError(domain.FieldError{
			Field: "name", Message: "is required",
		})
	}

	code := strings.TrimSpace(in.Code)
	if code == "" {
		code = generateCode("PROV", time.Now().UTC())
	}
	rating := in.Rating
	if rating == 0 {
		rating = 5
	}

	supplier := domain.Supplier{
		Code:         code,
		Name:         strings.TrimSpace(in.Name),
		TaxID:        in.TaxID,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		Contact:      in.Contact,
		ProductType:  in.ProductType,
		LeadTimeDays: in.LeadTimeDays,
		Rating:       rating,
		CreatedBy:    &requesterID,
		Active:       true,
	}

	if err := s.Store.Suppliers().Create(ctx, &supplier); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Supplier{}, domain.NewValidationError(domain.FieldError{
				Field: "code", Message: "is already in use",
			})
		}
		return domain.Supplier{}, fmt.Errorf("create supplier: %w", err)
	}

	s.Cache.Invalidate(cache.KeySuppliers)
	return supplier, nil
}

// ListActive returns active suppliers, cached until the next supplier write.
func (s *SupplierService) ListActive(ctx context.Context) ([]domain.Supplier, error) {
	if suppliers, ok := cache.Get[[]domain.Supplier](s.Cache, cache.KeySuppliers); ok {
		return suppliers, nil
	}

	suppliers, err := s.Store.Suppliers().ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}

	cache.Put(s.Cache, cache.KeySuppliers, suppliers)
	return suppliers, nil
}
