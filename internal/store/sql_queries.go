// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-product-tracker/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "email", "password_hash"}

	productColumns = []string{
		"id",
		"user_id",
		"name",
		"category",
		"purchase_date",
		"purchase_price",
		"warranty_expiry_date",
		"model_number",
		"serial_number",
		"location_in_house",
		"created_at",
	}

	fileColumns = []string{
		"id",
		"product_id",
		"user_id",
		"filename",
		"original_name",
		"mime_type",
		"size",
		"file_path",
		"description",
		"file_type",
		"status",
		"created_at",
		"updated_at",
	}

	noteColumns = []string{"id", "product_id", "user_id", "content", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func wrapBuildErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.Insert(user.TableName()).
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	query, args, err := psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// ── products ──────────────────────────────────────────────────────────────────

func buildCreateProductQuery(product models.Product) (string, []any, error) {
	d := product.ProductDetails
	query, args, err := psql.Insert(product.TableName()).
		Columns(productColumns[1:10]...).
		Values(
			product.UserID,
			d.Name,
			d.Category,
			d.PurchaseDate,
			d.PurchasePrice,
			d.WarrantyExpiryDate,
			d.ModelNumber,
			d.SerialNumber,
			d.LocationInHouse,
		).
		Suffix(returning(productColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildListProductsQuery(userID int64) (string, []any, error) {
	query, args, err := psql.Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildGetProductQuery(userID, productID int64) (string, []any, error) {
	query, args, err := psql.Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"id": productID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// productPatchSetMap returns the SET clause of a partial update: one entry
// per field present in the patch. A present null clears the column.
func productPatchSetMap(patch models.ProductPatch) map[string]any {
	set := make(map[string]any, 8)

	if patch.Name.Set {
		set["name"] = patch.Name.Value
	}
	if patch.Category.Set {
		set["category"] = patch.Category.Value
	}
	if patch.PurchaseDate.Set {
		set["purchase_date"] = patch.PurchaseDate.Value
	}
	if patch.PurchasePrice.Set {
		set["purchase_price"] = patch.PurchasePrice.Value
	}
	if patch.WarrantyExpiryDate.Set {
		set["warranty_expiry_date"] = patch.WarrantyExpiryDate.Value
	}
	if patch.ModelNumber.Set {
		set["model_number"] = patch.ModelNumber.Value
	}
	if patch.SerialNumber.Set {
		set["serial_number"] = patch.SerialNumber.Value
	}
	if patch.LocationInHouse.Set {
		set["location_in_house"] = patch.LocationInHouse.Value
	}

	return set
}

// buildUpdateProductQuery builds a single UPDATE touching only the fields
// present in the patch, scoped by id and owner. SET columns are emitted in
// alphabetical order.
func buildUpdateProductQuery(update models.ProductUpdate) (string, []any, error) {
	set := productPatchSetMap(update.Patch)
	if len(set) == 0 {
		return "", nil, ErrNothingToUpdate
	}

	query, args, err := psql.Update(models.Product{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": update.ID}).
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix(returning(productColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteProductQuery(userID, productID int64) (string, []any, error) {
	query, args, err := psql.Delete(models.Product{}.TableName()).
		Where(sq.Eq{"id": productID}).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// ── files ─────────────────────────────────────────────────────────────────────

func buildCreateFileQuery(file models.FileRecord) (string, []any, error) {
	query, args, err := psql.Insert(file.TableName()).
		Columns(fileColumns[:11]...).
		Values(
			file.ID,
			file.ProductID,
			file.UserID,
			file.Filename,
			file.OriginalName,
			file.MimeType,
			file.Size,
			file.FilePath,
			file.Description,
			file.FileType,
			models.FileStatusPending,
		).
		Suffix(returning(fileColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildMarkFileReadyQuery(fileID string) (string, []any, error) {
	query, args, err := psql.Update(models.FileRecord{}.TableName()).
		Set("status", models.FileStatusReady).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": fileID}).
		Where(sq.Eq{"status": models.FileStatusPending}).
		Suffix(returning(fileColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildListFilesQuery(userID, productID int64) (string, []any, error) {
	query, args, err := psql.Select(fileColumns...).
		From(models.FileRecord{}.TableName()).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"status": models.FileStatusReady}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildGetFileQuery(userID int64, fileID string) (string, []any, error) {
	query, args, err := psql.Select(fileColumns...).
		From(models.FileRecord{}.TableName()).
		Where(sq.Eq{"id": fileID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"status": models.FileStatusReady}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteFileQuery(userID int64, fileID string) (string, []any, error) {
	query, args, err := psql.Delete(models.FileRecord{}.TableName()).
		Where(sq.Eq{"id": fileID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildListStalePendingFilesQuery(olderThan time.Time, limit uint64) (string, []any, error) {
	query, args, err := psql.Select(fileColumns...).
		From(models.FileRecord{}.TableName()).
		Where(sq.Eq{"status": models.FileStatusPending}).
		Where(sq.Lt{"created_at": olderThan}).
		OrderBy("created_at").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeletePendingFileQuery(fileID string) (string, []any, error) {
	query, args, err := psql.Delete(models.FileRecord{}.TableName()).
		Where(sq.Eq{"id": fileID}).
		Where(sq.Eq{"status": models.FileStatusPending}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildListProductFilesQuery selects every file of a product regardless of
// status. It is used to collect payloads before the product is deleted.
func buildListProductFilesQuery(userID, productID int64) (string, []any, error) {
	query, args, err := psql.Select(fileColumns...).
		From(models.FileRecord{}.TableName()).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// ── notes ─────────────────────────────────────────────────────────────────────

func buildCreateNoteQuery(note models.Note) (string, []any, error) {
	query, args, err := psql.Insert(note.TableName()).
		Columns("id", "product_id", "user_id", "content").
		Values(note.ID, note.ProductID, note.UserID, note.Content).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildListNotesQuery(userID, productID int64) (string, []any, error) {
	query, args, err := psql.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildUpdateNoteQuery(note models.Note) (string, []any, error) {
	query, args, err := psql.Update(note.TableName()).
		Set("content", note.Content).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": note.ID}).
		Where(sq.Eq{"user_id": note.UserID}).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteNoteQuery(userID int64, noteID string) (string, []any, error) {
	query, args, err := psql.Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}
