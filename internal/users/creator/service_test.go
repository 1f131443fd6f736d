// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package creator

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/sec"
	"github.com/davitran/inkora/pkg/pagination"
)

// # Test Fakes

// fakeCreatorRepo is an in-memory [CreatorRepository] for service tests.
type fakeCreatorRepo struct {
	accounts map[string]*Creator
}

func newFakeCreatorRepo() *fakeCreatorRepo {
	return &fakeCreatorRepo{accounts: make(map[string]*Creator)}
}

func (repo *fakeCreatorRepo) FindByID(_ context.Context, id string) (*Creator, error) {
	if account, ok := repo.accounts[id]; ok {
		return account, nil
	}
	return nil, apperr.NotFound("Creator")
}

func (repo *fakeCreatorRepo) FindByEmail(_ context.Context, email string) (*Creator, error) {
	for _, account := range repo.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, apperr.NotFound("Creator")
}

func (repo *fakeCreatorRepo) FindByPhone(_ context.Context, phone string) (*Creator, error) {
	for _, account := range repo.accounts {
		if account.PhoneNumber == phone {
			return account, nil
		}
	}
	return nil, apperr.NotFound("Creator")
}

func (repo *fakeCreatorRepo) Create(_ context.Context, account *Creator) error {
	repo.accounts[account.ID] = account
	return nil
}

func (repo *fakeCreatorRepo) List(_ context.Context, params pagination.Params) ([]*Creator, int, error) {
	var accounts []*Creator
	for _, account := range repo.accounts {
		accounts = append(accounts, account)
	}

	total := len(accounts)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return accounts[start:end], total, nil
}

func (repo *fakeCreatorRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	account, ok := repo.accounts[id]
	if !ok {
		return apperr.NotFound("Creator")
	}
	account.Status = status
	return nil
}

// fakeTokenProvider returns predictable tokens without an RSA key pair.
type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, _ string, _ sec.Role, _ time.Duration) (string, error) {
	return "token-" + userID, nil
}

func newTestService(repo *fakeCreatorRepo) *Service {
	return NewService(repo, fakeTokenProvider{}, slog.Default())
}

var validInput = RegisterInput{
	Username:        "inkartist",
	Email:           "artist@example.com",
	PhoneNumber:     "+84901234567",
	Password:        "correct-horse",
	ConfirmPassword: "correct-horse",
}

// # Registration

func TestRegister_Success(t *testing.T) {
	repo := newFakeCreatorRepo()
	service := newTestService(repo)

	session, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	// 1. New creators start active and receive a token immediately
	assert.Equal(t, StatusActive, session.Creator.Status)
	assert.Equal(t, "token-"+session.Creator.ID, session.Token)

	// 2. Password is stored hashed, never in the clear
	assert.NotEqual(t, validInput.Password, session.Creator.PasswordHash)
	assert.True(t, sec.CheckPasswordHash(validInput.Password, session.Creator.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeCreatorRepo()
	service := newTestService(repo)

	_, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	duplicate := validInput
	duplicate.PhoneNumber = "+84907654321"
	_, err = service.Register(context.Background(), duplicate)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	service := newTestService(newFakeCreatorRepo())

	input := validInput
	input.ConfirmPassword = "different"
	_, err := service.Register(context.Background(), input)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

// # Authentication

func TestLogin_Success(t *testing.T) {
	repo := newFakeCreatorRepo()
	service := newTestService(repo)

	registered, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	session, err := service.Login(context.Background(), validInput.PhoneNumber, validInput.Password)
	require.NoError(t, err)
	assert.Equal(t, registered.Creator.ID, session.Creator.ID)
	assert.NotEmpty(t, session.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	service := newTestService(newFakeCreatorRepo())

	_, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	_, err = service.Login(context.Background(), validInput.PhoneNumber, "wrong")

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

func TestLogin_InactiveAccountForbidden(t *testing.T) {
	repo := newFakeCreatorRepo()
	service := newTestService(repo)

	registered, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	// Suspend the account, then attempt a login with the CORRECT password
	require.NoError(t, repo.UpdateStatus(context.Background(), registered.Creator.ID, StatusSuspended))

	_, err = service.Login(context.Background(), validInput.PhoneNumber, validInput.Password)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "FORBIDDEN", appError.Code)
}

// # Actor Resolution

func TestResolveActive(t *testing.T) {
	repo := newFakeCreatorRepo()
	service := newTestService(repo)

	registered, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	// 1. Active account resolves
	account, err := service.ResolveActive(context.Background(), registered.Creator.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Creator.ID, account.ID)

	// 2. Inactive account is refused even with valid claims
	require.NoError(t, repo.UpdateStatus(context.Background(), registered.Creator.ID, StatusInactive))
	_, err = service.ResolveActive(context.Background(), registered.Creator.ID)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// 3. Vanished account surfaces as NotFound
	_, err = service.ResolveActive(context.Background(), "missing-id")
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

// # Admin Management

func TestListCreators_Paginated(t *testing.T) {
	repo := newFakeCreatorRepo()
	service := newTestService(repo)

	for i := 0; i < 5; i++ {
		input := validInput
		input.Email = fmt.Sprintf("artist%d@example.com", i)
		input.PhoneNumber = fmt.Sprintf("+8490123456%d", i)
		_, err := service.Register(context.Background(), input)
		require.NoError(t, err)
	}

	// 1. First page carries the page slice and the full total
	accounts, total, err := service.ListCreators(context.Background(), pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, 5, total)

	// 2. The last page is short, never an error
	accounts, total, err = service.ListCreators(context.Background(), pagination.Params{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, 5, total)
}

func TestSetStatus(t *testing.T) {
	repo := newFakeCreatorRepo()
	service := newTestService(repo)

	registered, err := service.Register(context.Background(), validInput)
	require.NoError(t, err)

	// 1. Valid transition
	require.NoError(t, service.SetStatus(context.Background(), registered.Creator.ID, StatusSuspended))
	assert.Equal(t, StatusSuspended, repo.accounts[registered.Creator.ID].Status)

	// 2. Unknown status is rejected before touching storage
	err = service.SetStatus(context.Background(), registered.Creator.ID, Status("banned"))
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	// 3. Unknown creator surfaces as NotFound
	err = service.SetStatus(context.Background(), "missing-id", StatusActive)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
