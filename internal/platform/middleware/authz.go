// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/davitran/inkora/internal/platform/ctxutil"
	"github.com/davitran/inkora/internal/platform/sec"
)

// TokenVerifier abstracts signature verification so the middleware does not
// depend on a concrete key implementation.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

/*
Authenticate validates the Bearer token on the Authorization header.

The middleware runs globally, so anonymous requests (no Authorization
header) pass through without claims — the public catalogue and the login
endpoints depend on that. Presenting a header is a commitment, though: a
malformed scheme, an invalid signature, or an expired token is rejected
with 401 rather than silently downgraded to anonymous. On success the
parsed claims are attached to the request context for downstream gates.

Parameters:
  - verifier: The token verification service (typically [sec.TokenService]).

Returns:
  - func(http.Handler) http.Handler: The middleware constructor.
*/
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. No header: proceed anonymously
			authHeader := request.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// 2. Enforce the "Bearer <token>" scheme
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization header format")
				return
			}

			// 3. Verify signature and expiry
			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
				return
			}

			// 4. Attach the authenticated identity to the context
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

/*
RequireRole gates a route to an explicit set of roles.

Roles form a closed set with no implied hierarchy: a route that admits
creators does not automatically admit admins unless the admin role is listed.
Must run after [Authenticate] in the middleware chain.

Parameters:
  - allowed: The roles permitted through this gate.

Returns:
  - func(http.Handler) http.Handler: The middleware constructor.
*/
func RequireRole(allowed ...sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			if !claims.Role.In(allowed...) {
				writeError(writer, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
