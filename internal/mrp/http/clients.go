package http

import (
	"encoding/json"
	"net/http"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
)

type ClientsHandler struct {
	Clients *service.ClientService
}

// HandleCreate adds a client.
//
//	@Summary		Create client
//	@Description	Adds a client. A blank code is generated as CLI-YYYYMMDD-XXXXXX. Requires the sales section.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mrpsdk.CreateClientRequest	true	"Client details"
//	@Success		201		{object}	mrpsdk.ClientResponse
//	@Failure		422		{object}	mrpsdk.APIError	"Validation failed"
//	@Router			/v1/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		mrpsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req mrpsdk.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mrpsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	client, err := h.Clients.Create(r.Context(), sess.Identity.ID, service.CreateClientInput{
		Code:           req.Code,
		Name:           req.Name,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		CreditLimit:    req.CreditLimit,
		Category:       req.Category,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toClient(client))
}

// HandleList returns active clients.
//
//	@Summary		List clients
//	@Description	Returns active clients. Requires the sales section.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	mrpsdk.ClientResponse
//	@Router			/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Clients.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClients(clients))
}
