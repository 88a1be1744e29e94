// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidProductID = errors.New("invalid product ID")

	ErrMissingCredentials     = errors.New("email and password are required")
	ErrMissingNameOrCategory  = errors.New("product name and category are required")
	ErrInvalidPurchasePrice   = errors.New("purchase price must be between 0 and 9999999999.99")
	ErrPurchasePricePrecision = errors.New("purchase price must have at most 2 decimal places")
	ErrNoFieldsToUpdate       = errors.New("at least one field must be provided for update")

	ErrInvalidFileType        = errors.New(`invalid file type, must be "receipt", "manual", or "other"`)
	ErrNoFile                 = errors.New("no file uploaded")
	ErrUnsupportedContentType = errors.New("only JPEG, PNG, GIF images and PDF files are allowed")
	ErrFileTooLarge           = errors.New("file is too large")

	ErrInvalidNoteID    = errors.New("invalid note ID")
	ErrEmptyNoteContent = errors.New("note content cannot be empty")
)
