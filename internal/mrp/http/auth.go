package http

import (
	"encoding/json"
	"net/http"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
)

type LoginHandler struct {
	Sessions   *service.SessionService
	Authorizer service.Authorizer
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in
//	@Description	Verifies a username/password pair and mints an opaque session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mrpsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	mrpsdk.LoginResponse
//	@Failure		400		{object}	mrpsdk.APIError	"Malformed body"
//	@Failure		401		{object}	mrpsdk.APIError	"Authentication failed"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req mrpsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mrpsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	sess, err := h.Sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mrpsdk.LoginResponse{
		Token:    sess.Token.String(),
		Identity: toIdentity(sess.Identity),
		Sections: toSections(h.Authorizer.SectionsFor(sess.Identity.Role)),
	})
}

type LogoutHandler struct {
	Sessions *service.SessionService
}

// ServeHTTP ends the current session. Idempotent.
//
//	@Summary		Log out
//	@Description	Removes the session for the presented token. Unknown tokens succeed silently.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204	"Session removed"
//	@Failure		401	{object}	mrpsdk.APIError	"Missing or invalid token"
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		mrpsdk.ErrUnauthorized.WriteError(w)
		return
	}

	h.Sessions.Logout(r.Context(), sess.Token)
	w.WriteHeader(http.StatusNoContent)
}

type SessionHandler struct {
	Authorizer service.Authorizer
}

// ServeHTTP describes the current session.
//
//	@Summary		Current session
//	@Description	Returns the identity and accessible sections for the presented token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	mrpsdk.SessionResponse
//	@Failure		401	{object}	mrpsdk.APIError	"Missing or invalid token"
//	@Router			/v1/auth/session [get].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		mrpsdk.ErrUnauthorized.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mrpsdk.SessionResponse{
		Identity: toIdentity(sess.Identity),
		Sections: toSections(h.Authorizer.SectionsFor(sess.Identity.Role)),
	})
}

type PasswordHandler struct {
	Auth *service.AuthService
}

// ServeHTTP changes the current user's password.
//
//	@Summary		Change password
//	@Description	Re-verifies the current password, then replaces the stored digest.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Success		204	"Password changed"
//	@Failure		401	{object}	mrpsdk.APIError	"Wrong current password"
//	@Failure		422	{object}	mrpsdk.APIError	"New password rejected"
//	@Router			/v1/auth/password [post].
func (h *PasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		mrpsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req mrpsdk.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mrpsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	err := h.Auth.ChangePassword(r.Context(), sess.Identity.ID,
		req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
