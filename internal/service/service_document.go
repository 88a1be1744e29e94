// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/store"
	"github.com/MKhiriev/go-product-tracker/models"
)

// UploadFieldName is the multipart field carrying an uploaded file. It also
// prefixes stored filenames.
const UploadFieldName = "productFile"

// documentService is the concrete implementation of DocumentService.
// Input is expected to be validated by DocumentValidationService.
type documentService struct {
	fileRepository store.FileRepository
	noteRepository store.NoteRepository
	fileStorage    store.FileStorage
	ids            IDGenerator
	logger         *logger.Logger
}

// NewDocumentService constructs a DocumentService over the given
// repositories and payload storage.
func NewDocumentService(
	fileRepository store.FileRepository,
	noteRepository store.NoteRepository,
	fileStorage store.FileStorage,
	ids IDGenerator,
	logger *logger.Logger,
) DocumentService {
	return &documentService{
		fileRepository: fileRepository,
		noteRepository: noteRepository,
		fileStorage:    fileStorage,
		ids:            ids,
		logger:         logger,
	}
}

// UploadFile stores an upload in three steps: a pending record is inserted,
// the payload is written, and the record is marked ready. The pending insert
// also proves that the caller owns the product. If a later step fails, the
// payload and the pending record are removed; a crash in between leaves a
// pending record that the sweeper removes.
func (d *documentService) UploadFile(ctx context.Context, upload models.FileUpload) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	filename := d.ids.Filename(UploadFieldName, upload.OriginalName)
	record := models.FileRecord{
		ID:           d.ids.Generate(),
		ProductID:    upload.ProductID,
		UserID:       upload.UserID,
		Filename:     filename,
		OriginalName: upload.OriginalName,
		MimeType:     upload.MimeType,
		Size:         upload.Size,
		FilePath:     d.fileStorage.Path(filename),
		Description:  upload.Description,
		FileType:     upload.FileType,
	}

	pending, err := d.fileRepository.CreateFile(ctx, record)
	if err != nil {
		return models.FileRecord{}, fileError(err)
	}

	if _, err = d.fileStorage.Save(ctx, pending.FilePath, upload.Content); err != nil {
		log.Err(err).
			Str("func", "documentService.UploadFile").
			Str("file_id", pending.ID).
			Msg("failed to store payload")
		d.discardUpload(ctx, pending, false)
		return models.FileRecord{}, fmt.Errorf("storing file failed: %w", err)
	}

	ready, err := d.fileRepository.MarkFileReady(ctx, pending.ID)
	if err != nil {
		log.Err(err).
			Str("func", "documentService.UploadFile").
			Str("file_id", pending.ID).
			Msg("failed to confirm upload")
		d.discardUpload(ctx, pending, true)
		return models.FileRecord{}, fmt.Errorf("confirming upload failed: %w", err)
	}

	log.Info().
		Str("file_id", ready.ID).
		Int64("product_id", ready.ProductID).
		Int64("size", ready.Size).
		Msg("file uploaded")

	return ready, nil
}

// discardUpload rolls back a failed upload. It runs detached from the
// request context so that a cancelled request is still cleaned up.
func (d *documentService) discardUpload(ctx context.Context, file models.FileRecord, payloadStored bool) {
	log := logger.FromContext(ctx)
	ctx = context.WithoutCancel(ctx)

	if payloadStored {
		if err := d.fileStorage.Remove(ctx, file.FilePath); err != nil {
			log.Err(err).Str("file_id", file.ID).Msg("failed to remove payload of failed upload")
		}
	}

	err := d.fileRepository.DeletePendingFile(ctx, file.ID)
	if err != nil && !errors.Is(err, store.ErrFileNotFound) {
		log.Err(err).Str("file_id", file.ID).Msg("failed to remove pending record of failed upload")
	}
}

// ListFiles returns the ready files of a product owned by userID.
func (d *documentService) ListFiles(ctx context.Context, userID, productID int64) ([]models.FileRecord, error) {
	files, err := d.fileRepository.ListFiles(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("file listing failed: %w", err)
	}

	return files, nil
}

// DownloadFile opens the payload of an owned file. A record whose payload is
// gone is reported as ErrFileContentNotFound.
func (d *documentService) DownloadFile(ctx context.Context, userID int64, fileID string) (models.FileDownload, error) {
	file, err := d.fileRepository.GetFile(ctx, userID, fileID)
	if err != nil {
		return models.FileDownload{}, fileError(err)
	}

	content, err := d.fileStorage.Open(ctx, file.FilePath)
	if errors.Is(err, store.ErrBlobNotFound) {
		logger.FromContext(ctx).Warn().
			Str("file_id", file.ID).
			Str("path", file.FilePath).
			Msg("file record without payload")
		return models.FileDownload{}, ErrFileContentNotFound
	}
	if err != nil {
		return models.FileDownload{}, fmt.Errorf("opening file failed: %w", err)
	}

	return models.FileDownload{File: file, Content: content}, nil
}

// DeleteFile removes an owned file. The payload is removed best-effort
// before the record; metadata removal proceeds even if the payload could
// not be deleted.
func (d *documentService) DeleteFile(ctx context.Context, userID int64, fileID string) (string, error) {
	log := logger.FromContext(ctx)

	file, err := d.fileRepository.GetFile(ctx, userID, fileID)
	if err != nil {
		return "", fileError(err)
	}

	if err = d.fileStorage.Remove(ctx, file.FilePath); err != nil {
		log.Err(err).
			Str("func", "documentService.DeleteFile").
			Str("file_id", file.ID).
			Msg("failed to remove payload, deleting metadata anyway")
	}

	if err = d.fileRepository.DeleteFile(ctx, userID, file.ID); err != nil {
		return "", fileError(err)
	}

	return file.ID, nil
}

// CreateNote attaches a note to a product owned by note.UserID.
func (d *documentService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	note.ID = d.ids.Generate()

	created, err := d.noteRepository.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, noteError(err)
	}

	return created, nil
}

// ListNotes returns the notes of a product owned by userID, newest first.
func (d *documentService) ListNotes(ctx context.Context, userID, productID int64) ([]models.Note, error) {
	notes, err := d.noteRepository.ListNotes(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("note listing failed: %w", err)
	}

	return notes, nil
}

// UpdateNote replaces the content of an owned note.
func (d *documentService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	updated, err := d.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		return models.Note{}, noteError(err)
	}

	return updated, nil
}

// DeleteNote removes an owned note and returns its id.
func (d *documentService) DeleteNote(ctx context.Context, userID int64, noteID string) (string, error) {
	if err := d.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return "", noteError(err)
	}

	return noteID, nil
}

// SweepPendingUploads removes uploads stuck in the pending state. Each record
// is deleted before its payload, and only while still pending, so an upload
// that completes concurrently keeps both.
func (d *documentService) SweepPendingUploads(ctx context.Context, olderThan time.Time, limit uint64) (int, error) {
	log := logger.FromContext(ctx)

	stale, err := d.fileRepository.ListStalePendingFiles(ctx, olderThan, limit)
	if err != nil {
		return 0, fmt.Errorf("listing pending uploads failed: %w", err)
	}

	removed := 0
	for _, file := range stale {
		err = d.fileRepository.DeletePendingFile(ctx, file.ID)
		if errors.Is(err, store.ErrFileNotFound) {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("removing pending upload %s failed: %w", file.ID, err)
		}

		if rmErr := d.fileStorage.Remove(ctx, file.FilePath); rmErr != nil {
			log.Err(rmErr).
				Str("file_id", file.ID).
				Str("path", file.FilePath).
				Msg("failed to remove payload of stale upload")
		}
		removed++
	}

	return removed, nil
}

func fileError(err error) error {
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		return ErrProductNotFound
	case errors.Is(err, store.ErrFileNotFound):
		return ErrFileNotFound
	case errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return fmt.Errorf("file operation failed: %w", err)
	}
}

func noteError(err error) error {
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		return ErrProductNotFound
	case errors.Is(err, store.ErrNoteNotFound):
		return ErrNoteNotFound
	case errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return fmt.Errorf("note operation failed: %w", err)
	}
}
