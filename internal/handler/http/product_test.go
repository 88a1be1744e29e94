// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-product-tracker/internal/service"
	"github.com/MKhiriev/go-product-tracker/internal/validators"
	"github.com/MKhiriev/go-product-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testProduct(id int64) models.Product {
	return models.Product{
		ID:     id,
		UserID: testIdentity.ID,
		ProductDetails: models.ProductDetails{
			Name:     "Smart TV",
			Category: "Electronics",
		},
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateProduct(t *testing.T) {
	router, m := newTestRouter(t)

	date := models.NewDate(2026, time.January, 15)
	price := 1250.0
	m.products.EXPECT().CreateProduct(gomock.Any(), testIdentity.ID, models.ProductDetails{
		Name:          "Smart TV",
		Category:      "Electronics",
		PurchaseDate:  &date,
		PurchasePrice: &price,
	}).Return(testProduct(1), nil)

	rr := serve(router, newAuthRequest(http.MethodPost, "/api/products",
		`{"name":"Smart TV","category":"Electronics","purchase_date":"2026-01-15","purchase_price":1250}`))

	require.Equal(t, http.StatusCreated, rr.Code)
	body := decodeResponse[models.ProductResponse](t, rr)
	assert.Equal(t, "Product added successfully.", body.Message)
	assert.Equal(t, int64(1), body.Product.ID)
	assert.Contains(t, rr.Body.String(), `"model_number":null`)
}

func TestCreateProduct_MissingCategory(t *testing.T) {
	router, m := newTestRouter(t)

	m.products.EXPECT().CreateProduct(gomock.Any(), testIdentity.ID, gomock.Any()).
		Return(models.Product{}, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrMissingNameOrCategory))

	rr := serve(router, newAuthRequest(http.MethodPost, "/api/products", `{"name":"Kettle"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Product name and category are required.", responseMessage(t, rr))
}

func TestCreateProduct_InvalidDate(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := serve(router, newAuthRequest(http.MethodPost, "/api/products",
		`{"name":"Kettle","category":"Kitchen","purchase_date":"yesterday"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid JSON was passed", responseMessage(t, rr))
}

func TestListProducts(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.products.EXPECT().ListProducts(gomock.Any(), testIdentity.ID).
			Return([]models.Product{testProduct(2), testProduct(1)}, nil)

		rr := serve(router, newAuthRequest(http.MethodGet, "/api/products", ""))

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeResponse[models.ProductsResponse](t, rr)
		assert.Equal(t, "Products Fetched successfully.", body.Message)
		require.Len(t, body.Products, 2)
		assert.Equal(t, int64(2), body.Products[0].ID)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.products.EXPECT().ListProducts(gomock.Any(), testIdentity.ID).Return(nil, nil)

		rr := serve(router, newAuthRequest(http.MethodGet, "/api/products", ""))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"products":[]`)
	})
}

func TestGetProduct(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		serviceErr  error
		callService bool
		wantStatus  int
		wantMessage string
	}{
		{name: "owned", path: "/api/products/1", callService: true, wantStatus: http.StatusOK, wantMessage: "Product fetched successfully."},
		{name: "not owned", path: "/api/products/1", callService: true, serviceErr: service.ErrProductNotFound, wantStatus: http.StatusNotFound, wantMessage: "Product not found or unauthorized"},
		{name: "non numeric id", path: "/api/products/abc", wantStatus: http.StatusNotFound, wantMessage: "Product not found or unauthorized"},
		{name: "negative id", path: "/api/products/-3", wantStatus: http.StatusNotFound, wantMessage: "Product not found or unauthorized"},
		{name: "store failure", path: "/api/products/1", callService: true, serviceErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMessage: "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			if tt.callService {
				product := testProduct(1)
				if tt.serviceErr != nil {
					product = models.Product{}
				}
				m.products.EXPECT().GetProduct(gomock.Any(), testIdentity.ID, int64(1)).Return(product, tt.serviceErr)
			}

			rr := serve(router, newAuthRequest(http.MethodGet, tt.path, ""))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, responseMessage(t, rr))
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	router, m := newTestRouter(t)

	m.products.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.ProductUpdate) (models.Product, error) {
			assert.Equal(t, int64(1), update.ID)
			assert.Equal(t, testIdentity.ID, update.UserID)

			assert.True(t, update.Patch.LocationInHouse.Set)
			assert.Equal(t, "Basement", *update.Patch.LocationInHouse.Value)
			assert.True(t, update.Patch.ModelNumber.IsNull())
			assert.False(t, update.Patch.Name.Set)

			product := testProduct(1)
			product.LocationInHouse = update.Patch.LocationInHouse.Value
			return product, nil
		},
	)

	rr := serve(router, newAuthRequest(http.MethodPut, "/api/products/1",
		`{"location_in_house":"Basement","model_number":null,"colour":"black"}`))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeResponse[models.ProductResponse](t, rr)
	assert.Equal(t, "Product updated successfully", body.Message)
	assert.Equal(t, "Smart TV", body.Product.Name)
	require.NotNil(t, body.Product.LocationInHouse)
	assert.Equal(t, "Basement", *body.Product.LocationInHouse)
}

func TestUpdateProduct_EmptyBody(t *testing.T) {
	router, m := newTestRouter(t)

	m.products.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).Return(models.Product{}, service.ErrNoFields)

	rr := serve(router, newAuthRequest(http.MethodPut, "/api/products/1", `{}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "No fields provided for update.", responseMessage(t, rr))
}

func TestDeleteProduct(t *testing.T) {
	router, m := newTestRouter(t)

	m.products.EXPECT().DeleteProduct(gomock.Any(), testIdentity.ID, int64(4)).Return(int64(4), nil)
	m.products.EXPECT().DeleteProduct(gomock.Any(), testIdentity.ID, int64(5)).Return(int64(0), service.ErrProductNotFound)

	rr := serve(router, newAuthRequest(http.MethodDelete, "/api/products/4", ""))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Product deleted successfully","id":4}`, rr.Body.String())

	rr = serve(router, newAuthRequest(http.MethodDelete, "/api/products/5", ""))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
