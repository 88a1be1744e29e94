// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-product-tracker/internal/config"
	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/mock"
	"github.com/MKhiriev/go-product-tracker/internal/store"
	"github.com/MKhiriev/go-product-tracker/internal/utils"
	"github.com/MKhiriev/go-product-tracker/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSignKey = "test-sign-key"

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, config.App{
		TokenSignKey:     testSignKey,
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}, logger.Nop())

	return svc, repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "a@x.io", Password: "p1"}

	gomock.InOrder(
		repo.EXPECT().FindUserByEmail(ctx, "a@x.io").Return(models.User{}, store.ErrUserNotFound),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "a@x.io", u.Email)
				assert.NotEqual(t, "p1", u.PasswordHash)
				assert.NoError(t, utils.ComparePassword(u.PasswordHash, "p1"))
				u.ID = 7
				return u, nil
			},
		),
	)

	result, err := svc.Register(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: 7, Email: "a@x.io"}, result.User)
	require.NotEmpty(t, result.Token)

	identity, err := svc.ParseToken(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User, identity)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	for _, creds := range []models.Credentials{
		{Email: "a@x.io"},
		{Password: "p1"},
		{},
	} {
		_, err := svc.Register(context.Background(), creds)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestAuthService_Register_ExistingEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@x.io").Return(models.User{ID: 1, Email: "a@x.io"}, nil)

	_, err := svc.Register(ctx, models.Credentials{Email: "a@x.io", Password: "p2"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@x.io").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.Credentials{Email: "a@x.io", Password: "p1"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_Register_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	repo.EXPECT().FindUserByEmail(ctx, "a@x.io").Return(models.User{}, dbErr)

	_, err := svc.Register(ctx, models.Credentials{Email: "a@x.io", Password: "p1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_Register_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@x.io").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Register(ctx, models.Credentials{Email: "a@x.io", Password: "p1"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@x.io").
		Return(models.User{ID: 3, Email: "a@x.io", PasswordHash: hashed(t, "p1")}, nil)

	result, err := svc.Login(ctx, models.Credentials{Email: "a@x.io", Password: "p1"})
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: 3, Email: "a@x.io"}, result.User)

	identity, err := svc.ParseToken(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), identity.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@x.io").
		Return(models.User{ID: 3, Email: "a@x.io", PasswordHash: hashed(t, "p1")}, nil)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@x.io", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "nobody@x.io").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.Credentials{Email: "nobody@x.io", Password: "p1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmailIsCaseSensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "A@x.io").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.Credentials{Email: "A@x.io", Password: "p1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@x.io"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_Login_CorruptedHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@x.io").
		Return(models.User{ID: 3, Email: "a@x.io", PasswordHash: "not-a-hash"}, nil)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@x.io", Password: "p1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken(models.Identity{ID: 1, Email: "a@x.io"}, time.Hour, "other-key")
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.TokenClaims{
		ID:    1,
		Email: "a@x.io",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty", token: "", wantErr: ErrMissingToken},
		{name: "garbage", token: "abc.def.ghi", wantErr: ErrInvalidToken},
		{name: "foreign key", token: foreign.SignedString, wantErr: ErrInvalidToken},
		{name: "expired", token: expired, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
