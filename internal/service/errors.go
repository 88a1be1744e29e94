// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-product-tracker/internal/validators"
)

// Error kinds of the service layer. The HTTP layer maps each kind to one
// status code.
var (
	ErrValidation          = errors.New("invalid data provided")
	ErrDuplicateEmail      = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMissingToken        = errors.New("no token, authorization denied")
	ErrInvalidToken        = errors.New("token is not valid")
	ErrNotFound            = errors.New("not found")
	ErrNoFields            = errors.New("no fields provided for update")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file is too large")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Not-found errors per resource. Each matches [ErrNotFound] with errors.Is.
// A record owned by another user is reported exactly like a missing one.
var (
	ErrProductNotFound     error = &notFoundError{msg: "product not found or unauthorized"}
	ErrFileNotFound        error = &notFoundError{msg: "file not found or unauthorized"}
	ErrFileContentNotFound error = &notFoundError{msg: "file not found in storage"}
	ErrNoteNotFound        error = &notFoundError{msg: "note not found or unauthorized"}
)

type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string {
	return e.msg
}

func (e *notFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// validationError translates a validator failure into a service error kind.
func validationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrNoFieldsToUpdate):
		return ErrNoFields
	case errors.Is(err, validators.ErrUnsupportedContentType):
		return fmt.Errorf("%w: %w", ErrUnsupportedFileType, err)
	case errors.Is(err, validators.ErrFileTooLarge):
		return fmt.Errorf("%w: %w", ErrFileTooLarge, err)
	case errors.Is(err, validators.ErrInvalidProductID):
		return ErrProductNotFound
	case errors.Is(err, validators.ErrInvalidNoteID):
		return ErrNoteNotFound
	default:
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
}
