package http

import (
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
)

func toIdentity(i domain.Identity) mrpsdk.Identity {
	return mrpsdk.Identity{
		ID:             i.ID,
		Username:       i.Username,
		DisplayName:    i.DisplayName,
		Role:           string(i.Role),
		PermissionTags: i.PermissionTags,
	}
}

func toSections(sections []domain.Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, string(s))
	}
	return out
}

func toUser(u domain.User) mrpsdk.UserResponse {
	return mrpsdk.UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		Role:           string(u.Role),
		PermissionTags: u.PermissionTags,
		Email:          u.Email,
		Phone:          u.Phone,
		Department:     u.Department,
		CreatedAt:      u.CreatedAt,
		LastAccessAt:   u.LastAccessAt,
		Active:         u.Active,
	}
}

func toUsers(users []domain.User) []mrpsdk.UserResponse {
	out := make([]mrpsdk.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	return out
}

func toProduct(p domain.Product) mrpsdk.ProductResponse {
	return mrpsdk.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Unit:          p.Unit,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		StockMin:      p.StockMin,
		StockMax:      p.StockMax,
		StockCurrent:  p.StockCurrent,
		Location:      p.Location,
		SupplierID:    p.SupplierID,
		SupplierName:  p.SupplierName,
		CreatedAt:     p.CreatedAt,
		Active:        p.Active,
	}
}

func toProducts(products []domain.Product) []mrpsdk.ProductResponse {
	out := make([]mrpsdk.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProduct(p))
	}
	return out
}

func toSupplier(s domain.Supplier) mrpsdk.SupplierResponse {
	return mrpsdk.SupplierResponse{
		ID:           s.ID,
		Code:         s.Code,
		Name:         s.Name,
		TaxID:        s.TaxID,
		Address:      s.Address,
		Phone:        s.Phone,
		Email:        s.Email,
		Contact:      s.Contact,
		ProductType:  s.ProductType,
		LeadTimeDays: s.LeadTimeDays,
		Rating:       s.Rating,
		CreatedAt:    s.CreatedAt,
		Active:       s.Active,
	}
}

func toSuppliers(suppliers []domain.Supplier) []mrpsdk.SupplierResponse {
	out := make([]mrpsdk.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplier(s))
	}
	return out
}

func toClient(c domain.Client) mrpsdk.ClientResponse {
	return mrpsdk.ClientResponse{
		ID:             c.ID,
		Code:           c.Code,
		Name:           c.Name,
		DocumentType:   c.DocumentType,
		DocumentNumber: c.DocumentNumber,
		Address:        c.Address,
		Phone:          c.Phone,
		Email:          c.Email,
		CreditLimit:    c.CreditLimit,
		Balance:        c.Balance,
		Category:       c.Category,
		CreatedAt:      c.CreatedAt,
		Active:         c.Active,
	}
}

func toClients(clients []domain.Client) []mrpsdk.ClientResponse {
	out := make([]mrpsdk.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClient(c))
	}
	return out
}

func toSale(s domain.Sale) mrpsdk.SaleResponse {
	lines := make([]mrpsdk.SaleLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, mrpsdk.SaleLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Discount:  l.Discount,
			LineTotal: l.LineTotal,
		})
	}
	return mrpsdk.SaleResponse{
		ID:            s.ID,
		InvoiceNumber: s.InvoiceNumber,
		ClientID:      s.ClientID,
		ClientName:    s.ClientName,
		Date:          s.Date,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Tax:           s.Tax,
		Total:         s.Total,
		Status:        s.Status,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		Lines:         lines,
		CreatedAt:     s.CreatedAt,
	}
}

func toSales(sales []domain.Sale) []mrpsdk.SaleResponse {
	out := make([]mrpsdk.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSale(s))
	}
	return out
}

func toAuditEntries(entries []domain.AuditEntry) []mrpsdk.AuditEntryResponse {
	out := make([]mrpsdk.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, mrpsdk.AuditEntryResponse{
			ID:          e.ID,
			ActorUserID: e.ActorUserID,
			Category:    string(e.Category),
			Action:      string(e.Action),
			Detail:      e.Detail,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out
}
