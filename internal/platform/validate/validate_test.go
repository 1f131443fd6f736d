// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/validate"
)

/*
TestValidator_Required verifies required-field detection including whitespace-only values.
*/
func TestValidator_Required(t *testing.T) {
	v := &validate.Validator{}
	v.Required("title", "").Required("status", "   ").Required("ok", "Graphic Novel")

	err := v.Err()
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Len(t, appError.Details, 2)
	assert.Equal(t, "title", appError.Details[0].Field)
	assert.Equal(t, "status", appError.Details[1].Field)
}

/*
TestValidator_Email verifies RFC 5322 address parsing.
*/
func TestValidator_Email(t *testing.T) {
	valid := &validate.Validator{}
	valid.Email("email", "creator@inkora.app")
	assert.NoError(t, valid.Err())

	invalid := &validate.Validator{}
	invalid.Email("email", "not-an-email")
	assert.Error(t, invalid.Err())
}

/*
TestValidator_Phone verifies phone number shape checking.
*/
func TestValidator_Phone(t *testing.T) {
	cases := map[string]bool{
		"+819012345678": true,
		"0901234567":    true,
		"12345":         false,
		"abc123":        false,
		"":              false,
	}

	for input, wantOK := range cases {
		v := &validate.Validator{}
		v.Phone("phone_number", input)
		if wantOK {
			assert.NoError(t, v.Err(), "input %q", input)
		} else {
			assert.Error(t, v.Err(), "input %q", input)
		}
	}
}

/*
TestValidator_OneOf verifies membership checks used for moderation statuses.
*/
func TestValidator_OneOf(t *testing.T) {
	ok := &validate.Validator{}
	ok.OneOf("status", "published", "pending", "published", "rejected")
	assert.NoError(t, ok.Err())

	bad := &validate.Validator{}
	bad.OneOf("status", "archived", "pending", "published", "rejected")
	assert.Error(t, bad.Err())
}

/*
TestValidator_URL verifies absolute http(s) URL checking for audiobook episode links.
*/
func TestValidator_URL(t *testing.T) {
	ok := &validate.Validator{}
	ok.URL("youtube_url", "https://www.youtube.com/watch?v=abc123")
	assert.NoError(t, ok.Err())

	for _, bad := range []string{"youtube.com/watch", "ftp://host/x", ""} {
		v := &validate.Validator{}
		v.URL("youtube_url", bad)
		assert.Error(t, v.Err(), "input %q", bad)
	}
}

/*
TestValidator_Custom verifies password-confirmation style checks.
*/
func TestValidator_Custom(t *testing.T) {
	v := &validate.Validator{}
	v.Custom("confirm_password", "secret1" != "secret2", "Passwords do not match")

	err := v.Err()
	require.Error(t, err)
	assert.True(t, v.HasErrors())
}
