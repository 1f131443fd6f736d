// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package member

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/davitran/inkora/internal/platform/request"
	"github.com/davitran/inkora/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for member accounts.
type Handler struct {
	service *Service
}

// NewHandler constructs a new member [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the public member endpoints.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Post("/users/register", handler.Register)
	api.Post("/users/login", handler.Login)
}

// # Registration

// registerRequest defines the inbound JSON schema for member sign-up.
type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	MobileNumber    string `json:"mobile_number"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

/*
POST /api/v1/users/register.

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
		Name:            input.Name,
		Email:           input.Email,
		MobileNumber:    input.MobileNumber,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "User registered successfully", session)
}

// # Authentication

// loginRequest defines the inbound JSON schema for member login.
type loginRequest struct {
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password"`
}

/*
POST /api/v1/users/login.

Response:
  - 200: AuthSession: Account + token
  - 401: Unauthorized: Bad credentials
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
