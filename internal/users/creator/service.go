// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

/*
Package creator implements accounts for content authors.

Creators register with a username, email, and phone number, and log in with
phone number + password. Only creators in the "active" status may
authenticate or touch content; administrators manage creator statuses
through the admin surface.

Architecture:

  - Service: Registration, login, per-request active-account resolution,
    and admin status management.
  - Repository: Postgres-backed persistence for the users.creator table.
  - Handler: Public registration/login endpoints plus the admin-scoped
    creator management endpoints.
*/
package creator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/sec"
	"github.com/davitran/inkora/internal/platform/validate"
	"github.com/davitran/inkora/pkg/pagination"
	"github.com/davitran/inkora/pkg/uuid"
)

const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldPassword    = "password"
	FieldStatus      = "status"
)

// TokenProvider defines the contract for issuing signed access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, role sec.Role, timeToLive time.Duration) (string, error)
}

// Service orchestrates creator account use cases.
type Service struct {
	creators CreatorRepository
	tokens   TokenProvider
	logger   *slog.Logger
}

// NewService constructs a new creator [Service].
func NewService(creators CreatorRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		creators: creators,
		tokens:   tokens,
		logger:   logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new creator.
type RegisterInput struct {
	Username        string
	Email           string
	PhoneNumber     string
	Password        string
	ConfirmPassword string
}

// AuthSession pairs an authenticated creator with their issued access token.
type AuthSession struct {
	Creator *Creator `json:"creator"`
	Token   string   `json:"token"`
}

/*
Register validates, hashes, and persists a new creator account.

Description: New creators start in the active status and receive an access
token immediately so registration doubles as a first login.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *AuthSession: The created account with its access token
  - error: Validation failures, Conflict on duplicate identity, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*AuthSession, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPhoneNumber, input.PhoneNumber)
	validator.Required(FieldPassword, input.Password)

	if !validator.HasErrors() {
		validator.Email(FieldEmail, input.Email)
		validator.Phone(FieldPhoneNumber, input.PhoneNumber)
		validator.Custom(FieldPassword, input.Password != input.ConfirmPassword, "Passwords do not match")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Verify email uniqueness. Return a client-safe Conflict err.
	if _, err := service.creators.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("creator_service_hash_failed: %w", err)
	}

	// Construct the new Creator entity. Time-sortable ID to prevent PG index fragmentation.
	account := &Creator{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hashedPassword,
		Status:       StatusActive,
	}

	if err := service.creators.Create(context, account); err != nil {
		return nil, err
	}

	// Registration doubles as the first login
	token, err := service.tokens.GenerateAccessToken(account.ID, account.Username, sec.RoleCreator, sec.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("creator_service_token_failed: %w", err)
	}

	service.logger.Info("creator_registered",
		slog.String("creator_id", account.ID),
		slog.String("username", account.Username),
	)

	return &AuthSession{Creator: account, Token: token}, nil
}

// # Authentication Flow

/*
Login validates creator credentials and issues an access token.

Description: Creators authenticate with their phone number. The account must
be active — inactive and suspended accounts are refused with Forbidden even
when the password is correct.

Parameters:
  - context: context.Context
  - mobileNumber: string
  - password: string

Returns:
  - *AuthSession: Authenticated creator with access token
  - error: Unauthorized on bad credentials, Forbidden on non-active accounts
*/
func (service *Service) Login(context context.Context, mobileNumber, password string) (*AuthSession, error) {

	validator := &validate.Validator{}
	validator.Required(FieldPhoneNumber, mobileNumber)
	validator.Required(FieldPassword, password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Generic message on lookup failure to prevent account enumeration
	account, err := service.creators.FindByPhone(context, mobileNumber)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid phone number or password")
	}

	// Account state gate comes before the password check: a suspended creator
	// with the right password still learns nothing beyond "forbidden".
	if !account.IsActive() {
		return nil, apperr.Forbidden("Account is not active")
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid phone number or password")
	}

	token, err := service.tokens.GenerateAccessToken(account.ID, account.Username, sec.RoleCreator, sec.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("creator_service_token_failed: %w", err)
	}

	service.logger.Info("creator_logged_in", slog.String("creator_id", account.ID))

	return &AuthSession{Creator: account, Token: token}, nil
}

// # Actor Resolution

/*
ResolveActive resolves a creator id from token claims into a live account.

Description: Called on every authenticated creator request. The token alone
is not trusted for account state — a creator suspended after token issuance
is locked out immediately.

Returns:
  - *Creator: The active account
  - error: apperr.NotFound if the account vanished, apperr.Forbidden if not active
*/
func (service *Service) ResolveActive(context context.Context, id string) (*Creator, error) {
	account, err := service.creators.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if !account.IsActive() {
		return nil, apperr.Forbidden("Account is not active")
	}

	return account, nil
}

// # Admin Management

/*
ListCreators returns one page of creator accounts and the total count. Admin-only.
*/
func (service *Service) ListCreators(context context.Context, params pagination.Params) ([]*Creator, int, error) {
	return service.creators.List(context, params)
}

/*
SetStatus updates a creator's account status. Admin-only.

Parameters:
  - context: context.Context
  - id: string (Creator UUID)
  - status: Status (active, inactive, suspended)

Returns:
  - error: Validation failure on an unknown status, apperr.NotFound if absent
*/
func (service *Service) SetStatus(context context.Context, id string, status Status) error {

	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, string(status), AllStatuses()...)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.creators.UpdateStatus(context, id, status); err != nil {
		return err
	}

	service.logger.Info("creator_status_updated",
		slog.String("creator_id", id),
		slog.String("status", string(status)),
	)

	return nil
}
