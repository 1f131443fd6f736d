// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

/*
Package admin implements the administrator identity.

There is exactly one administrator and it is never persisted: the identity
is a single username + bcrypt password hash pair supplied through
configuration. A successful login issues a token carrying every claim the
admin surface needs, so no admin request ever touches the database for
identity resolution.
*/
package admin

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/constants"
	"github.com/davitran/inkora/internal/platform/sec"
	"github.com/davitran/inkora/internal/platform/validate"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// TokenProvider defines the contract for issuing signed access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, role sec.Role, timeToLive time.Duration) (string, error)
}

// Service authenticates the fixed administrator credential pair.
type Service struct {
	username     string
	passwordHash string
	tokens       TokenProvider
	logger       *slog.Logger
}

// NewService constructs the admin [Service] from configured credentials.
// The password arrives pre-hashed (bcrypt) — the clear text is never held.
func NewService(username, passwordHash string, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		username:     username,
		passwordHash: passwordHash,
		tokens:       tokens,
		logger:       logger,
	}
}

// Identity is the admin profile block returned on login.
type Identity struct {
	Username string   `json:"username"`
	Role     sec.Role `json:"role"`
}

// AuthSession pairs the admin identity with its issued access token.
type AuthSession struct {
	Admin *Identity `json:"admin"`
	Token string    `json:"token"`
}

/*
Login authenticates the fixed administrator credential pair.

Description: The username must match exactly; the password is verified
against the configured bcrypt hash. Both failure modes return the same
Unauthorized message so a probe learns nothing about which half was wrong.

Returns:
  - *AuthSession: Admin identity + 24h access token
  - error: Validation failures or Unauthorized
*/
func (service *Service) Login(context context.Context, username, password string) (*AuthSession, error) {

	validator := &validate.Validator{}
	validator.Required(FieldUsername, username)
	validator.Required(FieldPassword, password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Constant-time username comparison, then bcrypt hash verification.
	usernameMatches := subtle.ConstantTimeCompare([]byte(username), []byte(service.username)) == 1
	if !usernameMatches || !sec.CheckPasswordHash(password, service.passwordHash) {
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	// The token carries the whole identity: no runtime lookup is ever needed.
	token, err := service.tokens.GenerateAccessToken(constants.AdminSubject, service.username, sec.RoleAdmin, sec.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("admin_service_token_failed: %w", err)
	}

	service.logger.Info("admin_logged_in", slog.String("username", service.username))

	return &AuthSession{
		Admin: &Identity{Username: service.username, Role: sec.RoleAdmin},
		Token: token,
	}, nil
}
