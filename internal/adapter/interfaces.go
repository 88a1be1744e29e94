// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the product tracker HTTP
// API.
//
// [Client] covers every route of the server. After Register or Login the
// returned token is kept on the client and sent in the X-Auth-Token header
// of every protected request.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values
// defined in errors.go so that callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-product-tracker/models"
)

// ServerAdapter is the product tracker API as seen by a client.
type ServerAdapter interface {
	// SetToken stores the token attached to all subsequent protected
	// requests.
	SetToken(token string)

	// Token returns the stored token or an empty string.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	CreateProduct(ctx context.Context, details models.ProductDetails) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, productID int64) (models.Product, error)
	UpdateProduct(ctx context.Context, productID int64, patch models.ProductPatch) (models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) (int64, error)

	// UploadFile sends one file as multipart form data. description may be
	// nil.
	UploadFile(ctx context.Context, productID int64, fileType models.FileType, file UploadFile) (models.FileRecord, error)
	ListFiles(ctx context.Context, productID int64) ([]models.FileRecord, error)

	// DownloadFile returns the payload stream. The caller must close it.
	DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, fileID string) (string, error)

	CreateNote(ctx context.Context, productID int64, content string) (models.Note, error)
	ListNotes(ctx context.Context, productID int64) ([]models.Note, error)
	UpdateNote(ctx context.Context, noteID, content string) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) (string, error)
}

// UploadFile describes a file sent to the server.
type UploadFile struct {
	Name        string
	ContentType string
	Description *string
	Content     io.Reader
}
