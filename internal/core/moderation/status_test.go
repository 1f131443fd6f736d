// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package moderation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davitran/inkora/internal/core/moderation"
)

/*
TestStatus_IsValid verifies the closed set of legal moderation states.
*/
func TestStatus_IsValid(t *testing.T) {
	assert.True(t, moderation.StatusPending.IsValid())
	assert.True(t, moderation.StatusPublished.IsValid())
	assert.True(t, moderation.StatusRejected.IsValid())

	assert.False(t, moderation.Status("").IsValid())
	assert.False(t, moderation.Status("archived").IsValid())
	assert.False(t, moderation.Status("PUBLISHED").IsValid())
}

/*
TestStatus_Initial verifies the submission-role dependent starting state.
*/
func TestStatus_Initial(t *testing.T) {
	// Admin submissions go live without review
	assert.Equal(t, moderation.StatusPublished, moderation.Initial(true))

	// Creator submissions await moderation
	assert.Equal(t, moderation.StatusPending, moderation.Initial(false))
}
