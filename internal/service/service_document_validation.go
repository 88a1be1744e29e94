// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-product-tracker/internal/validators"
	"github.com/MKhiriev/go-product-tracker/models"
)

// DocumentValidationService validates file and note input before delegating
// to the wrapped DocumentService. Malformed ids are reported as not found.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

// NewDocumentValidationService rejects uploads above maxUploadSize bytes.
func NewDocumentValidationService(maxUploadSize int64) DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(maxUploadSize),
	}
}

func (v *DocumentValidationService) UploadFile(ctx context.Context, upload models.FileUpload) (models.FileRecord, error) {
	if err := v.validator.Validate(ctx, upload); err != nil {
		return models.FileRecord{}, validationError(err)
	}

	return v.inner.UploadFile(ctx, upload)
}

func (v *DocumentValidationService) ListFiles(ctx context.Context, userID, productID int64) ([]models.FileRecord, error) {
	if productID <= 0 {
		return nil, ErrProductNotFound
	}

	return v.inner.ListFiles(ctx, userID, productID)
}

func (v *DocumentValidationService) DownloadFile(ctx context.Context, userID int64, fileID string) (models.FileDownload, error) {
	if !validators.IsValidID(fileID) {
		return models.FileDownload{}, ErrFileNotFound
	}

	return v.inner.DownloadFile(ctx, userID, fileID)
}

func (v *DocumentValidationService) DeleteFile(ctx context.Context, userID int64, fileID string) (string, error) {
	if !validators.IsValidID(fileID) {
		return "", ErrFileNotFound
	}

	return v.inner.DeleteFile(ctx, userID, fileID)
}

func (v *DocumentValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	// product_id is checked first so that an unknown product is a 404 even
	// when the content is empty
	err := v.validator.Validate(ctx, note,
		validators.FieldUserID,
		validators.FieldProductID,
		validators.FieldContent,
	)
	if err != nil {
		return models.Note{}, validationError(err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *DocumentValidationService) ListNotes(ctx context.Context, userID, productID int64) ([]models.Note, error) {
	if productID <= 0 {
		return nil, ErrProductNotFound
	}

	return v.inner.ListNotes(ctx, userID, productID)
}

func (v *DocumentValidationService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	err := v.validator.Validate(ctx, note,
		validators.FieldUserID,
		validators.FieldNoteID,
		validators.FieldContent,
	)
	if err != nil {
		return models.Note{}, validationError(err)
	}

	return v.inner.UpdateNote(ctx, note)
}

func (v *DocumentValidationService) DeleteNote(ctx context.Context, userID int64, noteID string) (string, error) {
	if !validators.IsValidID(noteID) {
		return "", ErrNoteNotFound
	}

	return v.inner.DeleteNote(ctx, userID, noteID)
}

func (v *DocumentValidationService) SweepPendingUploads(ctx context.Context, olderThan time.Time, limit uint64) (int, error) {
	return v.inner.SweepPendingUploads(ctx, olderThan, limit)
}

func (v *DocumentValidationService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}
