// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/store"
	"github.com/MKhiriev/go-product-tracker/models"
)

// productService is the concrete implementation of ProductService. Input
// is expected to be validated by ProductValidationService.
type productService struct {
	productRepository store.ProductRepository

	// fileStorage receives the payloads of files removed together with a
	// product.
	fileStorage store.FileStorage

	logger *logger.Logger
}

// NewProductService constructs a ProductService over the given repository
// and payload storage.
func NewProductService(productRepository store.ProductRepository, fileStorage store.FileStorage, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		fileStorage:       fileStorage,
		logger:            logger,
	}
}

// CreateProduct stores a product owned by userID.
func (p *productService) CreateProduct(ctx context.Context, userID int64, details models.ProductDetails) (models.Product, error) {
	product, err := p.productRepository.CreateProduct(ctx, models.Product{UserID: userID, ProductDetails: details})
	if err != nil {
		return models.Product{}, fmt.Errorf("product creation failed: %w", err)
	}

	return product, nil
}

// ListProducts returns the products of userID, newest first.
func (p *productService) ListProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	products, err := p.productRepository.ListProducts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("product listing failed: %w", err)
	}

	return products, nil
}

// GetProduct returns an owned product or ErrProductNotFound.
func (p *productService) GetProduct(ctx context.Context, userID, productID int64) (models.Product, error) {
	product, err := p.productRepository.GetProduct(ctx, userID, productID)
	if err != nil {
		return models.Product{}, productError(err)
	}

	return product, nil
}

// UpdateProduct applies a partial update to an owned product.
func (p *productService) UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error) {
	product, err := p.productRepository.UpdateProduct(ctx, update)
	if err != nil {
		return models.Product{}, productError(err)
	}

	return product, nil
}

// DeleteProduct deletes an owned product along with its files and notes.
// Payloads of the removed files are deleted best-effort: a storage failure
// is logged and does not fail the request.
func (p *productService) DeleteProduct(ctx context.Context, userID, productID int64) (int64, error) {
	log := logger.FromContext(ctx)

	files, err := p.productRepository.DeleteProduct(ctx, userID, productID)
	if err != nil {
		return 0, productError(err)
	}

	cleanupCtx := context.WithoutCancel(ctx)
	for _, file := range files {
		if rmErr := p.fileStorage.Remove(cleanupCtx, file.FilePath); rmErr != nil {
			log.Err(rmErr).
				Str("func", "productService.DeleteProduct").
				Str("file_id", file.ID).
				Str("path", file.FilePath).
				Msg("failed to remove payload of deleted product")
		}
	}

	return productID, nil
}

func productError(err error) error {
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		return ErrProductNotFound
	case errors.Is(err, store.ErrNothingToUpdate):
		return ErrNoFields
	default:
		return fmt.Errorf("product operation failed: %w", err)
	}
}
