// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction, body decoding,
and multipart form handling, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/constants"
	"github.com/davitran/inkora/internal/platform/ctxutil"
	"github.com/davitran/inkora/internal/platform/sec"
	"github.com/davitran/inkora/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// # Multipart Forms

/*
ParseMultipart parses the request as a multipart form bounded by the global
upload cap. Content creation and episode endpoints accept multipart bodies
(text fields + named file uploads) rather than JSON.

Returns:
  - error: apperr.BadRequest when the body is not valid multipart or exceeds the cap
*/
func ParseMultipart(request *http.Request) error {
	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		if errors.Is(err, multipart.ErrMessageTooLarge) {
			return apperr.BadRequest("Upload exceeds the maximum allowed size")
		}
		return apperr.BadRequest("Request body must be a valid multipart form")
	}
	return nil
}

/*
FormValue returns a text field from a parsed multipart (or urlencoded) form.
*/
func FormValue(request *http.Request, name string) string {
	return request.FormValue(name)
}

/*
FormFile returns the first uploaded file under the given field name.

The second return value is false when the field is absent — optional uploads
(icons) use it to skip asset placement entirely.
*/
func FormFile(request *http.Request, name string) (*multipart.FileHeader, bool) {
	if request.MultipartForm == nil || request.MultipartForm.File == nil {
		return nil, false
	}
	headers := request.MultipartForm.File[name]
	if len(headers) == 0 {
		return nil, false
	}
	return headers[0], true
}

// # Identity

/*
Claims extracts the authenticated claims from the request context.

Returns nil if the request is anonymous.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the claims.

Returns:
  - *sec.AuthClaims: The authenticated claims
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

/*
RequiredUserID returns the subject id of the currently authenticated actor.

Returns:
  - string: Actor UUID (or the fixed admin subject)
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
