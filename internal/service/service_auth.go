// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-product-tracker/internal/config"
	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/store"
	"github.com/MKhiriev/go-product-tracker/internal/utils"
	"github.com/MKhiriev/go-product-tracker/internal/validators"
	"github.com/MKhiriev/go-product-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// passwordHashCost is the bcrypt cost used for new password hashes.
	passwordHashCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewCredentialsValidator(),
		tokenSignKey:     cfg.TokenSignKey,
		tokenDuration:    cfg.TokenDuration,
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

// Register creates a new user account and logs it in.
//
// Returns:
//   - ErrValidation if the email or the password is empty.
//   - ErrDuplicateEmail if a user with this email exists. The lookup is
//     backed by the unique index, so concurrent registrations of the same
//     email still create one row.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.AuthResult{}, validationError(err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	switch {
	case err == nil:
		log.Info().Str("email", credentials.Email).Msg("registration with an existing email")
		return models.AuthResult{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrUserNotFound):
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := utils.HashPassword(credentials.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Email: credentials.Email, PasswordHash: hash})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResult{}, ErrDuplicateEmail
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("user registered")

	return a.authResult(user)
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// that the response does not reveal which accounts exist.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.AuthResult{}, validationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", credentials.Email).Msg("login with unknown email")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	err = utils.ComparePassword(user.PasswordHash, credentials.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Info().Int64("user_id", user.ID).Msg("login with wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("stored password hash is unusable")
		return models.AuthResult{}, fmt.Errorf("password check failed: %w", err)
	}

	return a.authResult(user)
}

// ParseToken verifies the signature and expiry of tokenString and returns
// the identity it carries. Any verification failure is reported as
// ErrInvalidToken so that callers do not need to inspect low-level errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	if tokenString == "" {
		return models.Identity{}, ErrMissingToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token verification failed")
		return models.Identity{}, ErrInvalidToken
	}

	return token.Identity(), nil
}

func (a *authService) authResult(user models.User) (models.AuthResult, error) {
	token, err := utils.GenerateJWTToken(user.Identity(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResult{Token: token.SignedString, User: user.Identity()}, nil
}
