package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
)

type SalesHandler struct {
	Sales *service.SaleService
}

// HandleCreate records a sale.
//
//	@Summary		Create sale
//	@Description	Records a sale with its lines, the matching stock movements and the stock decrements, atomically. Requires the sales section.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mrpsdk.CreateSaleRequest	true	"Sale details"
//	@Success		201		{object}	mrpsdk.SaleResponse
//	@Failure		422		{object}	mrpsdk.APIError	"Validation failed"
//	@Router			/v1/sales [post].
func (h *SalesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		mrpsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req mrpsdk.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mrpsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	lines := make([]service.SaleLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.SaleLineInput{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Discount:  l.Discount,
		})
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	sale, err := h.Sales.Create(r.Context(), sess.Identity.ID, service.CreateSaleInput{
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      req.ClientID,
		Date:          date,
		Subtotal:      req.Subtotal,
		Discount:      req.Discount,
		Tax:           req.Tax,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Lines:         lines,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSale(sale))
}

// HandleList returns recent sales.
//
//	@Summary		List sales
//	@Description	Returns the most recent sales with client names joined. Requires the sales section.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	mrpsdk.SaleResponse
//	@Router			/v1/sales [get].
func (h *SalesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Sales.ListRecent(r.Context(), 50)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSales(sales))
}
