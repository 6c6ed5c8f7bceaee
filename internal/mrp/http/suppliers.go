package http

import (
	"encoding/json"
	"net/http"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
)

type SuppliersHandler struct {
	Suppliers *service.SupplierService
}

// HandleCreate adds a supplier.
//
//	@Summary		Create supplier
//	@Description	Adds a supplier. A blank code is generated as PROV-YYYYMMDD-XXXXXX. Requires the inventory section.
//	@Tags			Inventory
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mrpsdk.CreateSupplierRequest	true	"Supplier details"
//	@Success		201		{object}	mrpsdk.SupplierResponse
//	@Failure		422		{object}	mrpsdk.APIError	"Validation failed"
//	@Router			/v1/suppliers [post].
func (h *SuppliersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		mrpsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req mrpsdk.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mrpsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	supplier, err := h.Suppliers.Create(r.Context(), sess.Identity.ID, service.CreateSupplierInput{
		Code:         req.Code,
		Name:         req.Name,
		TaxID:        req.TaxID,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		Contact:      req.Contact,
		ProductType:  req.ProductType,
		LeadTimeDays: req.LeadTimeDays,
		Rating:       req.Rating,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSupplier(supplier))
}

// HandleList returns active suppliers.
//
//	@Summary		List suppliers
//	@Description	Returns active suppliers. Requires the inventory section.
//	@Tags			Inventory
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	mrpsdk.SupplierResponse
//	@Router			/v1/suppliers [get].
func (h *SuppliersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.Suppliers.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSuppliers(suppliers))
}
