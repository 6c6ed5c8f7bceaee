package http

import (
	"net/http"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns 200 whenever the process is running, with uptime and version.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	mrpsdk.HealthResponse
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, mrpsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Verifies the database connection and reports per-dependency status.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	mrpsdk.HealthResponse
//	@Failure		503	{object}	mrpsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &mrpsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, mrpsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
