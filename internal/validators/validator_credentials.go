// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-product-tracker/models"
)

// CredentialsValidator checks register and login input.
type CredentialsValidator struct{}

// NewCredentialsValidator constructs a CredentialsValidator.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate accepts models.Credentials and *models.Credentials. Field scoping
// is not supported: both fields are always required.
func (v *CredentialsValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)
	default:
		return ErrUnsupportedType
	}
}

// Email and password are taken exactly as sent; a password of spaces is
// still a password.
func (v *CredentialsValidator) validateCredentials(c models.Credentials) error {
	if c.Email == "" || c.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}
