package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/pkg/httpx"
	"github.com/alejomzlz/panaderia-mrp/pkg/mrpsdk"
)

type UsersHandler struct {
	Users *service.UserService
}

// HandleCreate provisions a new account.
//
//	@Summary		Create user
//	@Description	Creates an account on behalf of the authenticated admin. Requires the users section.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mrpsdk.CreateUserRequest	true	"Account details"
//	@Success		201		{object}	mrpsdk.UserResponse
//	@Failure		409		{object}	mrpsdk.APIError	"Username taken"
//	@Failure		422		{object}	mrpsdk.APIError	"Validation failed"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		mrpsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req mrpsdk.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mrpsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.Users.Create(r.Context(), sess.Identity.ID, service.CreateUserInput{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		DisplayName:     req.DisplayName,
		Role:            domain.Role(req.Role),
		PermissionTags:  req.PermissionTags,
		Email:           req.Email,
		Phone:           req.Phone,
		Department:      req.Department,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUser(user))
}

// HandleList returns every account, newest first.
//
//	@Summary		List users
//	@Description	Returns all accounts, inactive ones included. Requires the users section.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	mrpsdk.UserResponse
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUsers(users))
}

// HandleSetActive flips an account's activity flag.
//
//	@Summary		Activate or deactivate user
//	@Description	Deactivation takes effect on the next login attempt; live sessions are untouched.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Param			id		path	int						true	"User id"
//	@Param			request	body	mrpsdk.SetActiveRequest	true	"Target state"
//	@Success		204		"State applied"
//	@Failure		404		{object}	mrpsdk.APIError	"Unknown user"
//	@Router			/v1/users/{id}/active [put].
func (h *UsersHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		mrpsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	var req mrpsdk.SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mrpsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.Users.SetActive(r.Context(), id, req.Active); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
