package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	mem "yatra/pkg/memcache"
	"yatra/pkg/utils"
)

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	args := m.Called(account, ctx)
	return args.Error(0)
}

func (m *mockAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func (m *mockAccountRepo) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := NewAccountService(repo, mem.NewResetTokens())

	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, err := svc.Login(request_models.LoginRequest{Email: "ghost@example.com", Password: "secret1"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := NewAccountService(repo, mem.NewResetTokens())

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)
	account := &db_models.Account{Email: "user@example.com", PasswordHash: hash, Role: "user"}

	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(account, nil)

	_, err = svc.Login(request_models.LoginRequest{Email: "user@example.com", Password: "wrong"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginIssuesToken(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := NewAccountService(repo, mem.NewResetTokens())

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)
	account := &db_models.Account{Email: "user@example.com", PasswordHash: hash, Role: "user"}

	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(account, nil)

	token, err := svc.Login(request_models.LoginRequest{Email: "user@example.com", Password: "correct-password"}, context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := NewAccountService(repo, mem.NewResetTokens())

	repo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&db_models.Account{Email: "taken@example.com"}, nil)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "taken@example.com",
		Password:    "secret1",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "InsertTx", mock.Anything, mock.Anything)
}

func TestGetProfileUnknownAccount(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := NewAccountService(repo, mem.NewResetTokens())

	repo.On("FindById", mock.Anything, "missing-id").Return(nil, nil)

	_, err := svc.GetProfile(context.Background(), "missing-id")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := NewAccountService(repo, mem.NewResetTokens())

	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	err := svc.RequestPasswordReset(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestResetPasswordConsumesToken(t *testing.T) {
	repo := &mockAccountRepo{}
	tokens := mem.NewResetTokens()
	svc := NewAccountService(repo, tokens)

	tokens.Set("tok-123", "user@example.com", time.Minute)
	repo.On("UpdatePasswordHash", mock.Anything, "user@example.com", mock.Anything).Return(nil)

	require.NoError(t, svc.ResetPassword(context.Background(), "tok-123", "new-password"))
	repo.AssertCalled(t, "UpdatePasswordHash", mock.Anything, "user@example.com", mock.Anything)

	// Single use: the same token no longer resolves.
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), "tok-123", "another"), utils.ErrInvalidResetToken)
}

func TestResetPasswordRejectsUnknownToken(t *testing.T) {
	svc := NewAccountService(&mockAccountRepo{}, mem.NewResetTokens())

	err := svc.ResetPassword(context.Background(), "bogus", "new-password")
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}
