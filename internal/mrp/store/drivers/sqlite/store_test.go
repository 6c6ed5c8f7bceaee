package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
}

func TestUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := &domain.User{
		Username:         "mrivas",
		DisplayName:      "Marta Rivas",
		Role:             domain.RoleProduction,
		CredentialDigest: "deadbeef",
		Email:            "mrivas@panaderia.com",
		Active:           true,
	}
	require.NoError(t, s.Users().Create(ctx, u))
	require.NotZero(t, u.ID)

	t.Run("duplicate username rejected", func(t *testing.T) {
		dup := &domain.User{Username: "mrivas", DisplayName: "x", Role: domain.RoleUser, CredentialDigest: "d", Active: true}
		require.ErrorIs(t, s.Users().Create(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("lookup by username and id", func(t *testing.T) {
		byName, err := s.Users().GetByUsername(ctx, "mrivas")
		require.NoError(t, err)
		require.Equal(t, u.ID, byName.ID)
		require.Equal(t, domain.RoleProduction, byName.Role)

		byID, err := s.Users().GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "mrivas", byID.Username)
	})

	t.Run("authenticate matches all three columns at once", func(t *testing.T) {
		got, err := s.Users().Authenticate(ctx, "mrivas", "deadbeef")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)

		_, err = s.Users().Authenticate(ctx, "mrivas", "wrong")
		require.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, s.Users().SetActive(ctx, u.ID, false))
		_, err = s.Users().Authenticate(ctx, "mrivas", "deadbeef")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.NoError(t, s.Users().SetActive(ctx, u.ID, true))
	})

	t.Run("touch last access", func(t *testing.T) {
		require.NoError(t, s.Users().TouchLastAccess(ctx, u.ID))
		got, err := s.Users().GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastAccessAt)
	})

	t.Run("update digest enforces existence", func(t *testing.T) {
		require.NoError(t, s.Users().UpdateDigest(ctx, u.ID, "cafebabe"))
		require.ErrorIs(t, s.Users().UpdateDigest(ctx, 9999, "cafebabe"), store.ErrNotFound)
	})

	t.Run("list newest first includes inactive", func(t *testing.T) {
		second := &domain.User{
			Username: "later", DisplayName: "Later", Role: domain.RoleViewer,
			CredentialDigest: "d2", Active: false,
			CreatedAt: time.Now().UTC().Add(time.Hour),
		}
		require.NoError(t, s.Users().Create(ctx, second))

		users, err := s.Users().List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		require.Equal(t, "later", users[0].Username)
	})
}

func TestProductsAndMetrics(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sup := &domain.Supplier{Code: "PROV-1", Name: "Molinos del Sur", Rating: 5, Active: true}
	require.NoError(t, s.Suppliers().Create(ctx, sup))

	flour := &domain.Product{
		Code: "PROD-1", Name: "Harina 000", Category: domain.ProductCategoryRawMaterial,
		Unit: "KILO", PurchasePrice: 2.5, SalePrice: 0,
		StockMin: 50, StockCurrent: 20, SupplierID: &sup.ID, Active: true,
	}
	bread := &domain.Product{
		Code: "PROD-2", Name: "Baguette", Category: domain.ProductCategoryFinished,
		Unit: "UNIDAD", PurchasePrice: 0.4, SalePrice: 1.2,
		StockMin: 10, StockCurrent: 80, Active: true,
	}
	require.NoError(t, s.Products().Create(ctx, flour))
	require.NoError(t, s.Products().Create(ctx, bread))

	t.Run("list joins supplier name and orders by name", func(t *testing.T) {
		products, err := s.Products().ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		require.Equal(t, "Baguette", products[0].Name)
		require.Equal(t, "Molinos del Sur", products[1].SupplierName)
	})

	t.Run("below minimum", func(t *testing.T) {
		low, err := s.Products().ListBelowMinimum(ctx)
		require.NoError(t, err)
		require.Len(t, low, 1)
		require.Equal(t, "Harina 000", low[0].Name)
	})

	t.Run("metrics aggregate active products", func(t *testing.T) {
		total, err := s.Metrics().CountActiveProducts(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 2, total)

		low, err := s.Metrics().CountLowStockProducts(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, low)

		value, err := s.Metrics().InventoryValue(ctx)
		require.NoError(t, err)
		require.InDelta(t, 20*2.5+80*0.4, value, 0.001)
	})

	t.Run("update stock", func(t *testing.T) {
		require.NoError(t, s.Products().UpdateStock(ctx, flour.ID, 75))
		got, err := s.Products().GetByID(ctx, flour.ID)
		require.NoError(t, err)
		require.EqualValues(t, 75, got.StockCurrent)
	})
}

func TestSalesWithinTransaction(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	cli := &domain.Client{Code: "CLI-1", Name: "Cafe Central", Category: domain.ClientCategoryRegular, Active: true}
	require.NoError(t, s.Clients().Create(ctx, cli))

	bread := &domain.Product{
		Code: "PROD-9", Name: "Croissant", Category: domain.ProductCategoryFinished,
		Unit: "UNIDAD", SalePrice: 1.5, StockCurrent: 100, Active: true,
	}
	require.NoError(t, s.Products().Create(ctx, bread))

	err := s.WithTx(ctx, func(tx store.Tx) error {
		sale := &domain.Sale{
			InvoiceNumber: "F-0001", ClientID: cli.ID, Date: time.Now().UTC(),
			Subtotal: 15, Total: 15, Status: domain.SaleStatusPending,
		}
		if err := tx.Sales().Create(ctx, sale); err != nil {
			return err
		}
		line := &domain.SaleLine{SaleID: sale.ID, ProductID: bread.ID, Quantity: 10, UnitPrice: 1.5, LineTotal: 15}
		if err := tx.Sales().CreateLine(ctx, line); err != nil {
			return err
		}
		mv := &domain.StockMovement{
			Type: domain.MovementTypeSale, RefID: &sale.ID, RefType: "sale",
			ProductID: bread.ID, Quantity: -10, Unit: "UNIDAD",
			StockBefore: 100, StockAfter: 90,
		}
		if err := tx.Movements().Create(ctx, mv); err != nil {
			return err
		}
		return tx.Products().UpdateStock(ctx, bread.ID, 90)
	})
	require.NoError(t, err)

	sales, err := s.Sales().ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Equal(t, "Cafe Central", sales[0].ClientName)

	total, err := s.Sales().TotalSince(ctx, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	require.InDelta(t, 15, total, 0.001)

	movements, err := s.Movements().ListByProduct(ctx, bread.ID, 10)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	require.EqualValues(t, 90, movements[0].StockAfter)

	t.Run("rollback leaves nothing behind", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			sale := &domain.Sale{InvoiceNumber: "F-0002", ClientID: cli.ID, Date: time.Now().UTC()}
			if err := tx.Sales().Create(ctx, sale); err != nil {
				return err
			}
			return context.Canceled // force rollback
		})
		require.Error(t, err)

		sales, err := s.Sales().ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, sales, 1)
	})
}

func TestAuditRetention(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	old := domain.AuditEntry{
		ID: "01OLD", Category: domain.AuditAuth, Action: domain.AuditLoginFailure,
		Detail: "login failed for user jdoe", CreatedAt: time.Now().UTC().Add(-48 * time.Hour),
	}
	fresh := domain.AuditEntry{
		ID: "01NEW", Category: domain.AuditAuth, Action: domain.AuditLoginSuccess,
		Detail: "login for user jdoe", CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.Audit().Append(ctx, old))
	require.NoError(t, s.Audit().Append(ctx, fresh))

	entries, err := s.Audit().ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "01NEW", entries[0].ID)

	removed, err := s.Audit().DeleteOlderThan(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	entries, err = s.Audit().ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
