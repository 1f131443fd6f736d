// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

/*
Package member implements end-user (reader/listener) accounts.

Members register with name, email, and mobile number, log in with mobile
number + password, and receive a "user" role token. The role carries no
content capabilities — it exists so clients can attach reading history and
personalization later without another identity model.
*/
package member

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/sec"
	"github.com/davitran/inkora/internal/platform/validate"
	"github.com/davitran/inkora/pkg/uuid"
)

const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldMobileNumber = "mobile_number"
	FieldPassword     = "password"
)

// TokenProvider defines the contract for issuing signed access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, role sec.Role, timeToLive time.Duration) (string, error)
}

// Service orchestrates member account use cases.
type Service struct {
	members MemberRepository
	tokens  TokenProvider
	logger  *slog.Logger
}

// NewService constructs a new member [Service].
func NewService(members MemberRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		members: members,
		tokens:  tokens,
		logger:  logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name            string
	Email           string
	MobileNumber    string
	Password        string
	ConfirmPassword string
}

// AuthSession pairs an authenticated member with their issued access token.
type AuthSession struct {
	Member *Member `json:"user"`
	Token  string  `json:"token"`
}

/*
Register validates, hashes, and persists a new member account.

Returns:
  - *AuthSession: Created account + access token
  - error: Validation failures, Conflict on duplicate email, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*AuthSession, error) {

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name)
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldMobileNumber, input.MobileNumber)
	validator.Required(FieldPassword, input.Password)

	if !validator.HasErrors() {
		validator.Email(FieldEmail, input.Email)
		validator.Phone(FieldMobileNumber, input.MobileNumber)
		validator.Custom(FieldPassword, input.Password != input.ConfirmPassword, "Passwords do not match")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Verify email uniqueness. Return a client-safe Conflict err.
	if _, err := service.members.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("User with this email already exists")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("member_service_hash_failed: %w", err)
	}

	account := &Member{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		MobileNumber: input.MobileNumber,
		PasswordHash: hashedPassword,
	}

	if err := service.members.Create(context, account); err != nil {
		return nil, err
	}

	token, err := service.tokens.GenerateAccessToken(account.ID, account.Name, sec.RoleMember, sec.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("member_service_token_failed: %w", err)
	}

	service.logger.Info("member_registered", slog.String("member_id", account.ID))

	return &AuthSession{Member: account, Token: token}, nil
}

// # Authentication Flow

/*
Login validates member credentials and issues an access token.

Returns:
  - *AuthSession: Account + token
  - error: Unauthorized on bad credentials
*/
func (service *Service) Login(context context.Context, mobileNumber, password string) (*AuthSession, error) {

	validator := &validate.Validator{}
	validator.Required(FieldMobileNumber, mobileNumber)
	validator.Required(FieldPassword, password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Generic message on lookup failure to prevent account enumeration
	account, err := service.members.FindByMobile(context, mobileNumber)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid mobile number or password")
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid mobile number or password")
	}

	token, err := service.tokens.GenerateAccessToken(account.ID, account.Name, sec.RoleMember, sec.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("member_service_token_failed: %w", err)
	}

	service.logger.Info("member_logged_in", slog.String("member_id", account.ID))

	return &AuthSession{Member: account, Token: token}, nil
}
