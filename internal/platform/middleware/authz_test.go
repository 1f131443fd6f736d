// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davitran/inkora/internal/platform/ctxutil"
	"github.com/davitran/inkora/internal/platform/sec"
)

// fakeVerifier maps literal token strings to canned claims.
type fakeVerifier struct {
	tokens map[string]*sec.AuthClaims
}

func (verifier *fakeVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if claims, ok := verifier.tokens[token]; ok {
		return claims, nil
	}
	return nil, errors.New("signature mismatch")
}

func newVerifier() *fakeVerifier {
	return &fakeVerifier{tokens: map[string]*sec.AuthClaims{
		"creator-token": {UserID: "creator-1", Username: "inkartist", Role: sec.RoleCreator},
		"admin-token":   {UserID: "admin", Username: "admin", Role: sec.RoleAdmin},
	}}
}

// echoClaims records the claims the middleware left in the context.
func echoClaims(sink **sec.AuthClaims) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		*sink = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	}
}

func TestAuthenticate(t *testing.T) {
	var seen *sec.AuthClaims
	handler := Authenticate(newVerifier())(echoClaims(&seen))

	// 1. No header: anonymous pass-through, no claims
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, seen)

	// 2. Valid token: claims reach the handler
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer creator-token")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "creator-1", seen.UserID)

	// 3. Invalid token is rejected, never downgraded to anonymous
	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer forged")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// 4. Wrong scheme is rejected
	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Basic creds")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireRole(t *testing.T) {
	verifier := newVerifier()

	serve := func(allowed []sec.Role, token string) *httptest.ResponseRecorder {
		var seen *sec.AuthClaims
		handler := Authenticate(verifier)(RequireRole(allowed...)(echoClaims(&seen)))

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		if token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	// 1. Anonymous caller: 401 before any role check
	assert.Equal(t, http.StatusUnauthorized, serve([]sec.Role{sec.RoleAdmin}, "").Code)

	// 2. Authenticated but outside the set: 403
	assert.Equal(t, http.StatusForbidden, serve([]sec.Role{sec.RoleAdmin}, "creator-token").Code)

	// 3. Role in the set passes
	assert.Equal(t, http.StatusOK, serve([]sec.Role{sec.RoleAdmin}, "admin-token").Code)

	// 4. No hierarchy: admins are not implied into a creator-only set
	assert.Equal(t, http.StatusForbidden, serve([]sec.Role{sec.RoleCreator}, "admin-token").Code)

	// 5. Multi-role sets admit every listed role
	assert.Equal(t, http.StatusOK, serve([]sec.Role{sec.RoleCreator, sec.RoleAdmin}, "admin-token").Code)
}
