package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

func TestCreateProductGeneratesCode(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	p, err := ts.Products.Create(ctx, 1, CreateProductInput{
		Name:         "Baguette",
		Category:     domain.ProductCategoryFinished,
		Unit:         "unit",
		SalePrice:    2.5,
		StockMin:     10,
		StockCurrent: 40,
	})
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^PROD-\d{8}-[0-9A-F]{6}$`), p.Code)

	explicit, err := ts.Products.Create(ctx, 1, CreateProductInput{
		Code: "HARINA-01", Name: "Harina 000", Unit: "kg",
	})
	require.NoError(t, err)
	require.Equal(t, "HARINA-01", explicit.Code)
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	_, err := ts.Products.Create(ctx, 1, CreateProductInput{Name: "  "})
	require.True(t, domain.IsValidation(err))

	_, err = ts.Products.Create(ctx, 1, CreateProductInput{Name: "X", SalePrice: -1})
	require.True(t, domain.IsValidation(err))
}

func TestCreateProductDuplicateCode(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	_, err := ts.Products.Create(ctx, 1, CreateProductInput{Code: "PAN-01", Name: "Pan"})
	require.NoError(t, err)

	_, err = ts.Products.Create(ctx, 1, CreateProductInput{Code: "PAN-01", Name: "Otro"})
	require.True(t, domain.IsValidation(err))
}

func TestLowStockListing(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	_, err := ts.Products.Create(ctx, 1, CreateProductInput{
		Name: "Levadura", StockMin: 20, StockCurrent: 5,
	})
	require.NoError(t, err)
	_, err = ts.Products.Create(ctx, 1, CreateProductInput{
		Name: "Sal", StockMin: 10, StockCurrent: 50,
	})
	require.NoError(t, err)

	low, err := ts.Products.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, "Levadura", low[0].Name)
	require.True(t, low[0].BelowMinimum())
}

func TestProductListJoinsSupplierName(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)

	supplier, err := ts.Suppliers.Create(ctx, 1, CreateSupplierInput{Name: "Molinos SA"})
	require.NoError(t, err)

	_, err = ts.Products.Create(ctx, 1, CreateProductInput{
		Name: "Harina", SupplierID: &supplier.ID,
	})
	require.NoError(t, err)

	products, err := ts.Products.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Molinos SA", products[0].SupplierName)
}
