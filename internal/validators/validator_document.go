// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"mime"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-product-tracker/models"
	"github.com/google/uuid"
)

// Field name constants for document validation.
const (
	// FieldFileType targets the receipt/manual/other classification.
	FieldFileType = "file_type"

	// FieldFile requires an upload to carry a payload.
	FieldFile = "file"

	// FieldContentType checks both the declared media type and the extension
	// of the original filename against the allow-list.
	FieldContentType = "content_type"

	// FieldSize enforces the upload size cap.
	FieldSize = "size"

	// FieldNoteID targets the identifier of an existing note.
	FieldNoteID = "note_id"

	// FieldContent targets the text of a note.
	FieldContent = "content"
)

// AllowedMimeTypes lists the media types accepted for uploads.
var AllowedMimeTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"application/pdf",
}

// AllowedExtensions lists the lowercase file extensions accepted for uploads.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".pdf"}

// DocumentValidator implements [Validator] for models.FileUpload and
// models.Note.
type DocumentValidator struct {
	maxUploadSize int64
}

// NewDocumentValidator constructs a DocumentValidator that rejects uploads
// larger than maxUploadSize bytes.
func NewDocumentValidator(maxUploadSize int64) Validator {
	return &DocumentValidator{maxUploadSize: maxUploadSize}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FileUpload:
		return v.validateUpload(ctx, value, fields...)
	case *models.FileUpload:
		return v.validateUpload(ctx, *value, fields...)

	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUpload checks an incoming file. The order of the default fields
// matters: an unknown file type is reported before a missing payload.
//
// Default validated fields: user_id, product_id, file_type, file,
// content_type, size.
func (v *DocumentValidator) validateUpload(_ context.Context, u models.FileUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldProductID, FieldFileType, FieldFile, FieldContentType, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if u.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldProductID:
			if u.ProductID <= 0 {
				return ErrInvalidProductID
			}
		case FieldFileType:
			if !u.FileType.IsValid() {
				return ErrInvalidFileType
			}
		case FieldFile:
			if u.Content == nil || u.OriginalName == "" {
				return ErrNoFile
			}
		case FieldContentType:
			if !IsAllowedContentType(u.MimeType, u.OriginalName) {
				return ErrUnsupportedContentType
			}
		case FieldSize:
			if u.Size > v.maxUploadSize {
				return ErrFileTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNote checks a note.
//
// Default validated fields: user_id, content. Creation additionally scopes
// product_id and updates scope note_id.
func (v *DocumentValidator) validateNote(_ context.Context, n models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if n.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldProductID:
			if n.ProductID <= 0 {
				return ErrInvalidProductID
			}
		case FieldNoteID:
			if !IsValidID(n.ID) {
				return ErrInvalidNoteID
			}
		case FieldContent:
			if isBlank(n.Content) {
				return ErrEmptyNoteContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsAllowedContentType reports whether both the declared media type and the
// extension of filename are in the allow-list. Media type parameters such as
// charset are ignored.
func IsAllowedContentType(contentType, filename string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	ext := strings.ToLower(filepath.Ext(filename))

	return slices.Contains(AllowedMimeTypes, strings.ToLower(mediaType)) &&
		slices.Contains(AllowedExtensions, ext)
}

// IsValidID reports whether id has the form of a file or note identifier.
// Malformed ids never reach the database.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}
