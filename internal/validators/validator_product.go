// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-product-tracker/models"
)

// Field name constants for field-level scoping of product validation.
const (
	// FieldUserID targets the owner identifier.
	FieldUserID = "user_id"

	// FieldProductID targets the product identifier.
	FieldProductID = "product_id"

	// FieldName targets the required product name.
	FieldName = "name"

	// FieldCategory targets the required product category.
	FieldCategory = "category"

	// FieldPurchasePrice targets the optional purchase price, which must fit
	// into NUMERIC(12,2) without rounding.
	FieldPurchasePrice = "purchase_price"

	// FieldPatch requires a product patch to carry at least one field.
	FieldPatch = "patch"
)

// maxPurchasePrice is the largest value a NUMERIC(12,2) column can hold.
const maxPurchasePrice = 9999999999.99

// ProductValidator implements [Validator] for product input:
// models.ProductDetails, models.ProductPatch and models.ProductUpdate, each by
// value or by pointer.
type ProductValidator struct{}

// NewProductValidator constructs a ProductValidator.
func NewProductValidator() Validator {
	return &ProductValidator{}
}

func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProductDetails:
		return v.validateDetails(ctx, value, fields...)
	case *models.ProductDetails:
		return v.validateDetails(ctx, *value, fields...)

	case models.ProductPatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.ProductPatch:
		return v.validatePatch(ctx, *value, fields...)

	case models.ProductUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.ProductUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDetails validates the fields of a new product.
//
// Default validated fields: name, category, purchase_price.
func (v *ProductValidator) validateDetails(_ context.Context, d models.ProductDetails, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCategory, FieldPurchasePrice}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(d.Name) {
				return ErrMissingNameOrCategory
			}
		case FieldCategory:
			if isBlank(d.Category) {
				return ErrMissingNameOrCategory
			}
		case FieldPurchasePrice:
			if err := checkPrice(d.PurchasePrice); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatch validates the fields present in a partial update. A present
// name or category must not be empty or null, since both columns are
// required.
//
// Default validated fields: patch, name, category, purchase_price.
func (v *ProductValidator) validatePatch(_ context.Context, p models.ProductPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatch, FieldName, FieldCategory, FieldPurchasePrice}
	}

	for _, f := range fields {
		switch f {
		case FieldPatch:
			if p.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if p.Name.Set && (p.Name.Value == nil || isBlank(*p.Name.Value)) {
				return ErrMissingNameOrCategory
			}
		case FieldCategory:
			if p.Category.Set && (p.Category.Value == nil || isBlank(*p.Category.Value)) {
				return ErrMissingNameOrCategory
			}
		case FieldPurchasePrice:
			if p.PurchasePrice.Set {
				if err := checkPrice(p.PurchasePrice.Value); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate validates ids and then the patch itself.
func (v *ProductValidator) validateUpdate(ctx context.Context, u models.ProductUpdate, fields ...string) error {
	if u.UserID <= 0 {
		return ErrInvalidUserID
	}
	if u.ID <= 0 {
		return ErrInvalidProductID
	}

	return v.validatePatch(ctx, u.Patch, fields...)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// checkPrice accepts a missing price. A present one must be in range and
// carry at most two decimal places, otherwise the column would round it.
func checkPrice(price *float64) error {
	if price == nil {
		return nil
	}
	if *price < 0 || *price > maxPurchasePrice {
		return ErrInvalidPurchasePrice
	}
	if decimalPlaces(*price) > 2 {
		return ErrPurchasePricePrecision
	}
	return nil
}

// decimalPlaces counts the fraction digits of the shortest decimal form of
// f, which is the form it was written in by a JSON client.
func decimalPlaces(f float64) int {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	_, frac, found := strings.Cut(s, ".")
	if !found {
		return 0
	}
	return len(frac)
}
