// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-product-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with the generated id.
	// Returns [ErrEmailAlreadyExists] if the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with exactly this email or
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ProductRepository persists products. Every read and write is scoped to the
// owner; a product of another user behaves as if it did not exist.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	ListProducts(ctx context.Context, userID int64) ([]models.Product, error)
	GetProduct(ctx context.Context, userID, productID int64) (models.Product, error)

	// UpdateProduct applies only the fields present in the patch and returns
	// the updated product. Returns [ErrNothingToUpdate] for an empty patch.
	UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error)

	// DeleteProduct removes the product together with its files and notes.
	// It returns the file records that were removed so their payloads can be
	// cleaned up.
	DeleteProduct(ctx context.Context, userID, productID int64) ([]models.FileRecord, error)
}

// FileRepository persists metadata of uploaded files.
type FileRepository interface {
	// CreateFile inserts a pending record. Returns [ErrProductNotFound] when
	// the product is not owned by file.UserID.
	CreateFile(ctx context.Context, file models.FileRecord) (models.FileRecord, error)

	// MarkFileReady flips a pending record to ready once its payload is stored.
	MarkFileReady(ctx context.Context, fileID string) (models.FileRecord, error)

	// ListFiles returns the ready files of an owned product, newest first.
	ListFiles(ctx context.Context, userID, productID int64) ([]models.FileRecord, error)

	// GetFile returns a ready file owned by userID.
	GetFile(ctx context.Context, userID int64, fileID string) (models.FileRecord, error)

	// DeleteFile removes a file record owned by userID.
	DeleteFile(ctx context.Context, userID int64, fileID string) error

	// ListStalePendingFiles returns at most limit pending records created
	// before olderThan.
	ListStalePendingFiles(ctx context.Context, olderThan time.Time, limit uint64) ([]models.FileRecord, error)

	// DeletePendingFile removes a record only while it is still pending.
	DeletePendingFile(ctx context.Context, fileID string) error
}

// NoteRepository persists notes attached to products.
type NoteRepository interface {
	// CreateNote returns [ErrProductNotFound] when the product is not owned
	// by note.UserID.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, userID, productID int64) ([]models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID int64, noteID string) error
}

// FileStorage keeps uploaded payloads. Paths are produced by Path and are
// opaque to callers.
type FileStorage interface {
	// Path returns the storage location for a stored filename.
	Path(filename string) string

	// Save writes r to path and returns the number of bytes written.
	Save(ctx context.Context, path string, r io.Reader) (int64, error)

	// Open returns the payload at path or [ErrBlobNotFound].
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Remove deletes the payload at path. Removing a missing payload is not
	// an error.
	Remove(ctx context.Context, path string) error
}
