package http

import (
	"net/http"
	"strconv"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
)

type AuditHandler struct {
	Audit *service.AuditService
}

// ServeHTTP returns recent audit entries.
//
//	@Summary		Audit log
//	@Description	Returns the newest audit entries first. Requires the configuration section.
//	@Tags			Audit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query	int	false	"Maximum entries to return (default 50)"
//	@Success		200		{array}	mrpsdk.AuditEntryResponse
//	@Router			/v1/audit [get].
func (h *AuditHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.Audit.ListRecent(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAuditEntries(entries))
}
