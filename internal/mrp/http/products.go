package http

import (
	"encoding/json"
	"net/http"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
)

type ProductsHandler struct {
	Products *service.ProductService
}

// HandleCreate adds a product to the catalogue.
//
//	@Summary		Create product
//	@Description	Adds a product. A blank code is generated as PROD-YYYYMMDD-XXXXXX. Requires the inventory section.
//	@Tags			Inventory
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mrpsdk.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	mrpsdk.ProductResponse
//	@Failure		422		{object}	mrpsdk.APIError	"Validation failed"
//	@Router			/v1/products [post].
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		mrpsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req mrpsdk.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mrpsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	product, err := h.Products.Create(r.Context(), sess.Identity.ID, service.CreateProductInput{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		StockMin:      req.StockMin,
		StockMax:      req.StockMax,
		StockCurrent:  req.StockCurrent,
		Location:      req.Location,
		SupplierID:    req.SupplierID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProduct(product))
}

// HandleList returns the active catalogue.
//
//	@Summary		List products
//	@Description	Returns active products with supplier names joined. Requires the inventory section.
//	@Tags			Inventory
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	mrpsdk.ProductResponse
//	@Router			/v1/products [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProducts(products))
}

// HandleLowStock returns products below their stock minimum.
//
//	@Summary		List low-stock products
//	@Description	Returns active products whose current stock is under the configured minimum.
//	@Tags			Inventory
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	mrpsdk.ProductResponse
//	@Router			/v1/products/low-stock [get].
func (h *ProductsHandler) HandleLowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.LowStock(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProducts(products))
}
