// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-product-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ProductServiceWrapper,DocumentServiceWrapper

// AuthService registers users, verifies credentials and issues and parses
// tokens.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)

	// ParseToken returns the identity carried by a valid token.
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

// ProductService manages products on behalf of their owner.
type ProductService interface {
	CreateProduct(ctx context.Context, userID int64, details models.ProductDetails) (models.Product, error)
	ListProducts(ctx context.Context, userID int64) ([]models.Product, error)
	GetProduct(ctx context.Context, userID, productID int64) (models.Product, error)
	UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error)

	// DeleteProduct returns the id of the deleted product.
	DeleteProduct(ctx context.Context, userID, productID int64) (int64, error)
}

// DocumentService manages uploaded files and notes attached to products.
type DocumentService interface {
	UploadFile(ctx context.Context, upload models.FileUpload) (models.FileRecord, error)
	ListFiles(ctx context.Context, userID, productID int64) ([]models.FileRecord, error)

	// DownloadFile opens the payload of an owned file. The caller closes the
	// returned content.
	DownloadFile(ctx context.Context, userID int64, fileID string) (models.FileDownload, error)
	DeleteFile(ctx context.Context, userID int64, fileID string) (string, error)

	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, userID, productID int64) ([]models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID int64, noteID string) (string, error)

	// SweepPendingUploads removes at most limit uploads that stayed pending
	// since before olderThan and returns how many were removed.
	SweepPendingUploads(ctx context.Context, olderThan time.Time, limit uint64) (int, error)
}

// ProductServiceWrapper defines middleware composition for ProductService.
// Implementations wrap an existing ProductService to add behavior such as
// validation.
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService
}

// DocumentServiceWrapper defines middleware composition for DocumentService.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}

// IDGenerator issues identifiers for files and notes and unique names for
// stored payloads. [utils.UUIDGenerator] is the production implementation.
type IDGenerator interface {
	Generate() string
	Filename(prefix, originalName string) string
}
