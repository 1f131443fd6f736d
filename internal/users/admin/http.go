// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/davitran/inkora/internal/platform/request"
	"github.com/davitran/inkora/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for administrator authentication.
type Handler struct {
	service *Service
}

// NewHandler constructs a new admin [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the admin login endpoint. The caller mounts this
// inside the /admin route group, outside the role gate — login is how the
// role is obtained. All other admin endpoints live with their domains.
func (handler *Handler) RegisterRoutes(admin chi.Router) {
	admin.Post("/login", handler.Login)
}

// loginRequest defines the inbound JSON schema for admin login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
POST /api/v1/admin/login.

Response:
  - 200: AuthSession: Admin identity + token
  - 400: Validation: Missing credentials
  - 401: Unauthorized: Credential mismatch
*/
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Admin login successful", session)
}
