package http

import (
	"errors"
	"net/http"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
	"github.com/alejomzlz/panaderia-mrp/pkg/slogx"
)

// writeServiceError maps the service error taxonomy onto API errors.
// Anything outside the taxonomy is a 500 and gets logged here, once.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		fields := make([]mrpsdk.FieldError, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			fields = append(fields, mrpsdk.FieldError{Field: f.Field, Message: f.Message})
		}
		mrpsdk.NewValidationError(fields).WriteError(w)
	case errors.Is(err, domain.ErrAuthFailure):
		mrpsdk.ErrAuthFailed.WriteError(w)
	case errors.Is(err, domain.ErrDuplicateUsername):
		mrpsdk.NewDuplicateError("username").WriteError(w)
	case errors.Is(err, domain.ErrNotFound):
		mrpsdk.ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		mrpsdk.ErrServerError.WriteError(w)
	}
}
