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

// ClientService manages the client directory.
type ClientService struct {
	Store store.Store
	Cache *cache.Cache
}

type CreateClientInput struct {
	Code           string
	Name           string
	DocumentType   string
	DocumentNumber string
	Address        string
	Phone          string
	Email          string
	CreditLimit    float64
	Category       string
}

// Create stores a new client. A blank code is generated as
// CLI-YYYYMMDD-XXXXXX and a blank category defaults to REGULAR.
func (s *ClientService) Create(ctx context.Context, requesterID int64, in CreateClientInput) (domain.Client, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Client{}, domain.NewValidationError(domain.FieldError{
			Field: "name", Message: "is required",
		})
	}

	code := strings.TrimSpace(in.Code)
	if code == "" {
		code = generateCode("CLI", time.Now().UTC())
	}
	category := in.Category
	if category == "" {
		category = domain.ClientCategoryRegular
	}

	client := domain.Client{
		Code:           code,
		Name:           strings.TrimSpace(in.Name),
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Address:        in.Address,
		Phone:          in.Phone,
		Email:          in.Email,
		CreditLimit:    in.CreditLimit,
		Category:       category,
		CreatedBy:      &requesterID,
		Active:         true,
	}

	if err := s.Store.Clients().Create(ctx, &client); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Client{}, domain.NewValidationError(domain.FieldError{
				Field: "code", Message: "is already in use",
			})
		}
		return domain.Client{}, fmt.Errorf("create client: %w", err)
	}

	s.Cache.Invalidate(cache.KeyClients)
	return client, nil
}

// ListActive returns active clients, cached until the next client write.
func (s *ClientService) ListActive(ctx context.Context) ([]domain.Client, error) {
	if clients, ok := cache.Get[[]domain.Client](s.Cache, cache.KeyClients); ok {
		return clients, nil
	}

	clients, err := s.Store.Clients().ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	cache.Put(s.Cache, cache.KeyClients, clients)
	return clients, nil
}
