// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package member

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/sec"
)

// # Test Fakes

type fakeMemberRepo struct {
	accounts map[string]*Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{accounts: make(map[string]*Member)}
}

func (repo *fakeMemberRepo) FindByEmail(_ context.Context, email string) (*Member, error) {
	for _, account := range repo.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *fakeMemberRepo) FindByMobile(_ context.Context, mobile string) (*Member, error) {
	for _, account := range repo.accounts {
		if account.MobileNumber == mobile {
			return account, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *fakeMemberRepo) Create(_ context.Context, account *Member) error {
	repo.accounts[account.ID] = account
	return nil
}

type fakeTokenProvider struct {
	lastRole sec.Role
}

func (provider *fakeTokenProvider) GenerateAccessToken(userID, _ string, role sec.Role, _ time.Duration) (string, error) {
	provider.lastRole = role
	return "token-" + userID, nil
}

var validInput = RegisterInput{
	Name:            "Reader One",
	Email:           "reader@example.com",
	MobileNumber:    "+84911222333",
	Password:        "reading-list",
	ConfirmPassword: "reading-list",
}

// # Tests

func TestRegister_IssuesUserRoleToken(t *testing.T) {
	tokens := &fakeTokenProvider{}
	service := NewService(newFakeMemberRepo(), tokens, slog.Default())

	session, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	// Members get the browse-only "user" role, never creator or admin
	assert.Equal(t, sec.RoleMember, tokens.lastRole)
	assert.Equal(t, "token-"+session.Member.ID, session.Token)
	assert.True(t, sec.CheckPasswordHash(validInput.Password, session.Member.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service := NewService(newFakeMemberRepo(), &fakeTokenProvider{}, slog.Default())

	_, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	duplicate := validInput
	duplicate.MobileNumber = "+84999888777"
	_, err = service.Register(context.Background(), duplicate)

	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

func TestLogin(t *testing.T) {
	repo := newFakeMemberRepo()
	service := NewService(repo, &fakeTokenProvider{}, slog.Default())

	_, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	// 1. Correct credentials succeed
	session, err := service.Login(context.Background(), validInput.MobileNumber, validInput.Password)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	// 2. Wrong password is Unauthorized with a generic message
	_, err = service.Login(context.Background(), validInput.MobileNumber, "wrong")
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// 3. Unknown mobile number is indistinguishable from a wrong password
	_, err = service.Login(context.Background(), "+10000000000", validInput.Password)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}
