// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/models"
)

func newTestProductRepo(t *testing.T) (*productRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &productRepository{DB: db, logger: logger.Nop()}, mock
}

func addProductRow(rows *sqlmock.Rows, id, userID int64, name string) *sqlmock.Rows {
	return rows.AddRow(
		id, userID, name, "Tools",
		testTime, 129.99, nil,
		"M-1", nil, "Garage",
		testTime,
	)
}

func TestCreateProduct_Success(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(int64(3), "Drill", "Tools", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(addProductRow(productRows(), 11, 3, "Drill"))

	created, err := repo.CreateProduct(context.Background(), models.Product{
		UserID:         3,
		ProductDetails: models.ProductDetails{Name: "Drill", Category: "Tools"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 11 || created.UserID != 3 {
		t.Errorf("unexpected product %+v", created)
	}
	if created.PurchaseDate == nil || created.PurchaseDate.String() != "2026-03-14" {
		t.Errorf("expected purchase date 2026-03-14, got %v", created.PurchaseDate)
	}
	if created.PurchasePrice == nil || *created.PurchasePrice != 129.99 {
		t.Errorf("expected price 129.99, got %v", created.PurchasePrice)
	}
	if created.WarrantyExpiryDate != nil || created.SerialNumber != nil {
		t.Errorf("expected NULL columns to scan as nil")
	}
}

func TestCreateProduct_DBError(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectQuery("INSERT INTO products").WillReturnError(errors.New("boom"))

	_, err := repo.CreateProduct(context.Background(), models.Product{UserID: 3})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestListProducts_ReturnsRowsInOrder(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	rows := productRows()
	addProductRow(rows, 2, 3, "Newer")
	addProductRow(rows, 1, 3, "Older")

	mock.ExpectQuery("SELECT .* FROM products WHERE user_id = \\$1 ORDER BY created_at DESC, id DESC").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	products, err := repo.ListProducts(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 || products[0].Name != "Newer" || products[1].Name != "Older" {
		t.Fatalf("unexpected products %+v", products)
	}
}

func TestListProducts_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectQuery("SELECT .* FROM products").WillReturnRows(productRows())

	products, err := repo.ListProducts(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", products)
	}
}

func TestListProducts_RowError(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	rows := addProductRow(productRows(), 1, 3, "Drill").RowError(0, errors.New("broken row"))
	mock.ExpectQuery("SELECT .* FROM products").WillReturnRows(rows)

	_, err := repo.ListProducts(context.Background(), 3)
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

func TestGetProduct_NotOwned(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectQuery("SELECT .* FROM products WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(10), int64(4)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProduct(context.Background(), 4, 10)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestGetProduct_Success(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectQuery("SELECT .* FROM products").
		WithArgs(int64(10), int64(3)).
		WillReturnRows(addProductRow(productRows(), 10, 3, "Drill"))

	product, err := repo.GetProduct(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID != 10 || product.Name != "Drill" {
		t.Errorf("unexpected product %+v", product)
	}
}

func TestUpdateProduct_EmptyPatchSkipsDatabase(t *testing.T) {
	repo, _ := newTestProductRepo(t)

	_, err := repo.UpdateProduct(context.Background(), models.ProductUpdate{ID: 1, UserID: 3})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdateProduct_Success(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectQuery("UPDATE products SET location_in_house = \\$1 WHERE id = \\$2 AND user_id = \\$3").
		WithArgs("Garage", int64(1), int64(3)).
		WillReturnRows(addProductRow(productRows(), 1, 3, "Drill"))

	updated, err := repo.UpdateProduct(context.Background(), models.ProductUpdate{
		ID:     1,
		UserID: 3,
		Patch:  models.ProductPatch{LocationInHouse: models.Some("Garage")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.LocationInHouse == nil || *updated.LocationInHouse != "Garage" {
		t.Errorf("unexpected location %v", updated.LocationInHouse)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectQuery("UPDATE products").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateProduct(context.Background(), models.ProductUpdate{
		ID:     1,
		UserID: 3,
		Patch:  models.ProductPatch{Name: models.Some("X")},
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteProduct_ReturnsFilesAndCommits(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	files := fileRows().AddRow(
		"f-1", int64(1), int64(3), "productFile-1-x.pdf", "manual.pdf", "application/pdf",
		int64(2048), "/data/productFile-1-x.pdf", nil, "manual", "ready", testTime, testTime,
	)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM files WHERE product_id = \\$1 AND user_id = \\$2").
		WithArgs(int64(1), int64(3)).
		WillReturnRows(files)
	mock.ExpectQuery("DELETE FROM products WHERE id = \\$1 AND user_id = \\$2 RETURNING id").
		WithArgs(int64(1), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	removed, err := repo.DeleteProduct(context.Background(), 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(removed) != 1 || removed[0].FilePath != "/data/productFile-1-x.pdf" {
		t.Fatalf("unexpected files %+v", removed)
	}
}

func TestDeleteProduct_NotFoundRollsBack(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM files").WillReturnRows(fileRows())
	mock.ExpectQuery("DELETE FROM products").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.DeleteProduct(context.Background(), 3, 1)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteProduct_BeginFails(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := repo.DeleteProduct(context.Background(), 3, 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestDeleteProduct_CommitFails(t *testing.T) {
	repo, mock := newTestProductRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM files").WillReturnRows(fileRows())
	mock.ExpectQuery("DELETE FROM products").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := repo.DeleteProduct(ctx, 3, 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
