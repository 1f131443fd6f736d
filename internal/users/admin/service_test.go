// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package admin

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/constants"
	"github.com/davitran/inkora/internal/platform/sec"
)

type fakeTokenProvider struct {
	lastUserID string
	lastRole   sec.Role
}

func (provider *fakeTokenProvider) GenerateAccessToken(userID, _ string, role sec.Role, _ time.Duration) (string, error) {
	provider.lastUserID = userID
	provider.lastRole = role
	return "admin-token", nil
}

func newTestService(t *testing.T, tokens TokenProvider) *Service {
	t.Helper()
	hash, err := sec.HashPassword("Sup3r-Secret")
	require.NoError(t, err)
	return NewService("inkora-root", hash, tokens, slog.Default())
}

func TestLogin_Success(t *testing.T) {
	tokens := &fakeTokenProvider{}
	service := newTestService(t, tokens)

	session, err := service.Login(context.Background(), "inkora-root", "Sup3r-Secret")
	require.NoError(t, err)

	// The token subject is the fixed admin id, not a database row
	assert.Equal(t, constants.AdminSubject, tokens.lastUserID)
	assert.Equal(t, sec.RoleAdmin, tokens.lastRole)
	assert.Equal(t, "admin-token", session.Token)
	assert.Equal(t, "inkora-root", session.Admin.Username)
}

func TestLogin_Rejections(t *testing.T) {
	service := newTestService(t, &fakeTokenProvider{})

	// 1. Wrong password
	_, err := service.Login(context.Background(), "inkora-root", "wrong")
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// 2. Wrong username with the correct password — same error, no hint
	_, err = service.Login(context.Background(), "other-admin", "Sup3r-Secret")
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// 3. Missing fields fail validation before any comparison
	_, err = service.Login(context.Background(), "", "")
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
