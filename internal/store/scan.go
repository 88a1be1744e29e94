// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-product-tracker/models"

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Email, &user.PasswordHash)
}

func scanProduct(row rowScanner, p *models.Product) error {
	return row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Category,
		&p.PurchaseDate,
		&p.PurchasePrice,
		&p.WarrantyExpiryDate,
		&p.ModelNumber,
		&p.SerialNumber,
		&p.LocationInHouse,
		&p.CreatedAt,
	)
}

func scanFile(row rowScanner, f *models.FileRecord) error {
	return row.Scan(
		&f.ID,
		&f.ProductID,
		&f.UserID,
		&f.Filename,
		&f.OriginalName,
		&f.MimeType,
		&f.Size,
		&f.FilePath,
		&f.Description,
		&f.FileType,
		&f.Status,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
}

func scanNote(row rowScanner, n *models.Note) error {
	return row.Scan(&n.ID, &n.ProductID, &n.UserID, &n.Content, &n.CreatedAt, &n.UpdatedAt)
}
