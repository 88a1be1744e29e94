// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-product-tracker/internal/service"
	"github.com/MKhiriev/go-product-tracker/internal/utils"
	"github.com/go-chi/chi/v5"
)

// maxJSONBodySize caps JSON request bodies.
const maxJSONBodySize = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// userID returns the id of the authenticated caller. Routes behind the auth
// middleware always carry one; a missing identity is treated as an invalid
// token.
func userID(r *http.Request) (int64, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, service.ErrInvalidToken
	}
	return id, nil
}

// productIDParam parses a product id URL parameter. Anything but a positive
// integer cannot name a product, so it is reported as not found.
func productIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrProductNotFound
	}
	return id, nil
}
