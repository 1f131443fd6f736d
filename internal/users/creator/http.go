// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package creator

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/davitran/inkora/internal/platform/request"
	"github.com/davitran/inkora/internal/platform/respond"
	"github.com/davitran/inkora/internal/platform/sec"
	"github.com/davitran/inkora/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for creator accounts.
type Handler struct {
	service *Service
}

// NewHandler constructs a new creator [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the public creator endpoints.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Post("/creators/register", handler.Register)
	api.Post("/creators/login", handler.Login)
}

// RegisterAdminRoutes attaches the creator-management endpoints.
// The caller mounts these inside an admin-gated route group.
func (handler *Handler) RegisterAdminRoutes(admin chi.Router) {
	admin.Get("/creators", handler.ListCreators)
	admin.Put("/creators/{id}/status", handler.UpdateStatus)
}

// # Account Verification Middleware

/*
RequireActive re-resolves creator claims against the account table.

Description: Tokens outlive account state — a creator suspended an hour ago
still holds a syntactically valid token for another 23 hours. Every
creator-scoped content route therefore passes through this gate, which looks
the account up and rejects non-active states. Admin claims pass through
untouched: administrators are never persisted, there is nothing to look up.
*/
func RequireActive(service *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := requestutil.Claims(request)

			if claims != nil && claims.Role == sec.RoleCreator {
				if _, err := service.ResolveActive(request.Context(), claims.UserID); err != nil {
					respond.Error(writer, request, err)
					return
				}
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # Registration

// registerRequest defines the inbound JSON schema for creator sign-up.
type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

/*
POST /api/v1/creators/register.

Description: Enrolls a new creator account and returns it with an access token.

Response:
  - 201: AuthSession: Created account + token
  - 400: Validation: Missing fields or password mismatch
  - 409: Conflict: Email already registered
*/
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Register(request.Context(), RegisterInput{
		Username:        input.Username,
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Creator registered successfully", session)
}

// # Authentication

// loginRequest defines the inbound JSON schema for creator login.
type loginRequest struct {
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password"`
}

/*
POST /api/v1/creators/login.

Description: Authenticates a creator by phone number and password.

Response:
  - 200: AuthSession: Account + token
  - 401: Unauthorized: Bad credentials
  - 403: Forbidden: Account not active
*/
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input.MobileNumber, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Login successful", session)
}

// # Admin Management

/*
GET /api/v1/admin/creators.

Description: Lists creator accounts for moderation review, one page at a
time via the standard page/limit query parameters.

Response:
  - 200: []Creator: One page of accounts, newest-first, with pagination meta
  - 403: Forbidden: Non-admin caller
*/
func (handler *Handler) ListCreators(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	accounts, total, err := handler.service.ListCreators(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, map[string]any{"creators": accounts},
		pagination.NewMeta(params.Page, params.Limit, total))
}

// updateStatusRequest defines the inbound JSON schema for status changes.
type updateStatusRequest struct {
	Status string `json:"status"`
}

/*
PUT /api/v1/admin/creators/{id}/status.

Description: Moves a creator between active, inactive, and suspended.

Response:
  - 200: Message: Status updated
  - 400: Validation: Unknown status value
  - 404: NotFound: Creator absent
*/
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input updateStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetStatus(request.Context(), id, Status(input.Status)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Creator status updated successfully", nil)
}
