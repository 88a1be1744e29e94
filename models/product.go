// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProductDetails holds the user-editable part of a product record.
// Optional fields are nil when unset and serialize as JSON null.
type ProductDetails struct {
	// Name is required.
	Name string `json:"name"`

	// Category is required.
	Category string `json:"category"`

	PurchaseDate       *Date    `json:"purchase_date"`
	PurchasePrice      *float64 `json:"purchase_price"`
	WarrantyExpiryDate *Date    `json:"warranty_expiry_date"`
	ModelNumber        *string  `json:"model_number"`
	SerialNumber       *string  `json:"serial_number"`
	LocationInHouse    *string  `json:"location_in_house"`
}

// Product is a tracked item owned by exactly one user. The owner is set at
// creation and never changes.
type Product struct {
	// ID is the server-assigned unique identifier.
	ID int64 `json:"id"`

	// UserID is the owner of the product.
	UserID int64 `json:"user_id"`

	ProductDetails

	// CreatedAt is set by the database at insert time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductPatch is a partial update of a product. Only fields whose JSON key
// was present in the request are touched; unknown keys are ignored by the
// decoder. Unset fields are omitted when the patch is encoded.
type ProductPatch struct {
	Name               Optional[string]  `json:"name,omitzero"`
	Category           Optional[string]  `json:"category,omitzero"`
	PurchaseDate       Optional[Date]    `json:"purchase_date,omitzero"`
	PurchasePrice      Optional[float64] `json:"purchase_price,omitzero"`
	WarrantyExpiryDate Optional[Date]    `json:"warranty_expiry_date,omitzero"`
	ModelNumber        Optional[string]  `json:"model_number,omitzero"`
	SerialNumber       Optional[string]  `json:"serial_number,omitzero"`
	LocationInHouse    Optional[string]  `json:"location_in_house,omitzero"`
}

// IsEmpty reports whether the patch touches no field at all.
func (p ProductPatch) IsEmpty() bool {
	return !p.Name.Set &&
		!p.Category.Set &&
		!p.PurchaseDate.Set &&
		!p.PurchasePrice.Set &&
		!p.WarrantyExpiryDate.Set &&
		!p.ModelNumber.Set &&
		!p.SerialNumber.Set &&
		!p.LocationInHouse.Set
}

// ProductUpdate is a patch bound to the record it applies to.
type ProductUpdate struct {
	// ID identifies the product.
	ID int64

	// UserID scopes the update to the owner; a mismatch is reported exactly
	// like a missing product.
	UserID int64

	Patch ProductPatch
}
