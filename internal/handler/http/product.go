// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-product-tracker/internal/utils"
	"github.com/MKhiriev/go-product-tracker/models"
)

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var details models.ProductDetails
	if err = decodeJSON(w, r, &details); err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.CreateProduct(r.Context(), ownerID, details)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ProductResponse{
		Message: "Product added successfully.",
		Product: product,
	}, http.StatusCreated)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	products, err := h.services.ProductService.ListProducts(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	_, _ = utils.WriteJSON(w, models.ProductsResponse{
		Message:  "Products Fetched successfully.",
		Products: products,
	}, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	productID, err := productIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), ownerID, productID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ProductResponse{
		Message: "Product fetched successfully.",
		Product: product,
	}, http.StatusOK)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	productID, err := productIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch models.ProductPatch
	if err = decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.UpdateProduct(r.Context(), models.ProductUpdate{
		ID:     productID,
		UserID: ownerID,
		Patch:  patch,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ProductResponse{
		Message: "Product updated successfully",
		Product: product,
	}, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	productID, err := productIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	deletedID, err := h.services.ProductService.DeleteProduct(r.Context(), ownerID, productID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ProductDeletedResponse{
		Message: "Product deleted successfully",
		ID:      deletedID,
	}, http.StatusOK)
}
