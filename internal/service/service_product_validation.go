// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-product-tracker/internal/validators"
	"github.com/MKhiriev/go-product-tracker/models"
)

// ProductValidationService validates product input before delegating to the
// wrapped ProductService.
type ProductValidationService struct {
	inner     ProductService
	validator validators.Validator
}

func NewProductValidationService() ProductServiceWrapper {
	return &ProductValidationService{
		validator: validators.NewProductValidator(),
	}
}

func (v *ProductValidationService) CreateProduct(ctx context.Context, userID int64, details models.ProductDetails) (models.Product, error) {
	if userID <= 0 {
		return models.Product{}, validationError(validators.ErrInvalidUserID)
	}
	if err := v.validator.Validate(ctx, details); err != nil {
		return models.Product{}, validationError(err)
	}

	return v.inner.CreateProduct(ctx, userID, details)
}

func (v *ProductValidationService) ListProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	if userID <= 0 {
		return nil, validationError(validators.ErrInvalidUserID)
	}

	return v.inner.ListProducts(ctx, userID)
}

func (v *ProductValidationService) GetProduct(ctx context.Context, userID, productID int64) (models.Product, error) {
	if productID <= 0 {
		return models.Product{}, ErrProductNotFound
	}

	return v.inner.GetProduct(ctx, userID, productID)
}

func (v *ProductValidationService) UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Product{}, validationError(err)
	}

	return v.inner.UpdateProduct(ctx, update)
}

func (v *ProductValidationService) DeleteProduct(ctx context.Context, userID, productID int64) (int64, error) {
	if productID <= 0 {
		return 0, ErrProductNotFound
	}

	return v.inner.DeleteProduct(ctx, userID, productID)
}

func (v *ProductValidationService) Wrap(wrapped ProductService) ProductService {
	v.inner = wrapped
	return v
}
