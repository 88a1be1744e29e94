// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/models"
)

// fileRepository is the PostgreSQL-backed implementation of
// [FileRepository]. Records reference products(id, user_id), so a file can
// only ever be attached to a product of its own owner.
type fileRepository struct {
	*DB
	logger *logger.Logger
}

// NewFileRepository constructs a [FileRepository] backed by the provided
// database connection and logger.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateFile inserts a pending file record. The composite foreign key on
// (product_id, user_id) rejects the row when the product is missing or owned
// by someone else; that case is reported as [ErrProductNotFound].
func (f *fileRepository) CreateFile(ctx context.Context, file models.FileRecord) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateFileQuery(file)
	if err != nil {
		return models.FileRecord{}, err
	}

	var created models.FileRecord
	if err = scanFile(f.DB.QueryRowContext(ctx, query, args...), &created); err != nil {
		classified := classifyProductRefError(err)
		log.Err(err).
			Str("func", "fileRepository.CreateFile").
			Int64("user_id", file.UserID).
			Int64("product_id", file.ProductID).
			Msg("failed to insert file record")
		return models.FileRecord{}, classified
	}

	return created, nil
}

// MarkFileReady flips a pending record to ready. A record that is missing or
// no longer pending yields [ErrFileNotFound].
func (f *fileRepository) MarkFileReady(ctx context.Context, fileID string) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkFileReadyQuery(fileID)
	if err != nil {
		return models.FileRecord{}, err
	}

	var ready models.FileRecord
	if err = scanFile(f.DB.QueryRowContext(ctx, query, args...), &ready); err != nil {
		if noRows(err) {
			return models.FileRecord{}, ErrFileNotFound
		}
		log.Err(err).
			Str("func", "fileRepository.MarkFileReady").
			Str("file_id", fileID).
			Msg("failed to mark file ready")
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ready, nil
}

// ListFiles returns the ready files of a product owned by userID, newest
// first.
func (f *fileRepository) ListFiles(ctx context.Context, userID, productID int64) ([]models.FileRecord, error) {
	query, args, err := buildListFilesQuery(userID, productID)
	if err != nil {
		return nil, err
	}

	return f.queryFiles(ctx, "fileRepository.ListFiles", query, args)
}

// GetFile returns a ready file owned by userID or [ErrFileNotFound].
func (f *fileRepository) GetFile(ctx context.Context, userID int64, fileID string) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetFileQuery(userID, fileID)
	if err != nil {
		return models.FileRecord{}, err
	}

	var file models.FileRecord
	if err = scanFile(f.DB.QueryRowContext(ctx, query, args...), &file); err != nil {
		if noRows(err) {
			return models.FileRecord{}, ErrFileNotFound
		}
		log.Err(err).
			Str("func", "fileRepository.GetFile").
			Str("file_id", fileID).
			Msg("failed to get file record")
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return file, nil
}

// DeleteFile removes a record owned by userID or returns [ErrFileNotFound].
func (f *fileRepository) DeleteFile(ctx context.Context, userID int64, fileID string) error {
	query, args, err := buildDeleteFileQuery(userID, fileID)
	if err != nil {
		return err
	}

	return f.execDelete(ctx, "fileRepository.DeleteFile", query, args, ErrFileNotFound)
}

// ListStalePendingFiles returns pending records created before olderThan,
// oldest first.
func (f *fileRepository) ListStalePendingFiles(ctx context.Context, olderThan time.Time, limit uint64) ([]models.FileRecord, error) {
	query, args, err := buildListStalePendingFilesQuery(olderThan, limit)
	if err != nil {
		return nil, err
	}

	return f.queryFiles(ctx, "fileRepository.ListStalePendingFiles", query, args)
}

// DeletePendingFile removes a record only while it is still pending, so an
// upload that completes concurrently is left intact.
func (f *fileRepository) DeletePendingFile(ctx context.Context, fileID string) error {
	query, args, err := buildDeletePendingFileQuery(fileID)
	if err != nil {
		return err
	}

	return f.execDelete(ctx, "fileRepository.DeletePendingFile", query, args, ErrFileNotFound)
}

func (f *fileRepository) queryFiles(ctx context.Context, funcName, query string, args []any) ([]models.FileRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for listing files")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	files, err := collectFiles(rows)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read file rows")
		return nil, err
	}

	return files, nil
}

func (f *fileRepository) execDelete(ctx context.Context, funcName, query string, args []any, notFound error) error {
	log := logger.FromContext(ctx)

	res, err := f.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

// collectFiles scans and closes rows.
func collectFiles(rows *sql.Rows) ([]models.FileRecord, error) {
	defer rows.Close()

	files := make([]models.FileRecord, 0, 8)
	for rows.Next() {
		var file models.FileRecord
		if err := scanFile(rows, &file); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return files, nil
}
