// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/service"
	"github.com/MKhiriev/go-product-tracker/internal/utils"
	"github.com/MKhiriev/go-product-tracker/internal/validators"
)

const serverErrorMessage = "Server error"

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched top to bottom, so specific causes come before
// the service error kinds that wrap them.
var errorResponses = []errorResponse{
	{validators.ErrMissingCredentials, http.StatusBadRequest, "Please Enter all Required Fields"},
	{validators.ErrMissingNameOrCategory, http.StatusBadRequest, "Product name and category are required."},
	{validators.ErrInvalidPurchasePrice, http.StatusBadRequest, "Purchase price must be a non-negative number."},
	{validators.ErrPurchasePricePrecision, http.StatusBadRequest, "Purchase price must have at most 2 decimal places."},
	{validators.ErrInvalidFileType, http.StatusBadRequest, `Invalid file type. Must be "receipt", "manual", or "other".`},
	{validators.ErrNoFile, http.StatusBadRequest, "No file uploaded."},
	{validators.ErrEmptyNoteContent, http.StatusBadRequest, "Note content cannot be empty."},
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
	{ErrInvalidMultipartForm, http.StatusBadRequest, "Invalid multipart form"},
	{service.ErrValidation, http.StatusBadRequest, "Invalid data provided"},

	{service.ErrDuplicateEmail, http.StatusBadRequest, "User with this email already exists"},
	{service.ErrInvalidCredentials, http.StatusBadRequest, "Invalid Credentials"},
	{service.ErrMissingToken, http.StatusUnauthorized, "No Token, authorization denied"},
	{service.ErrInvalidToken, http.StatusUnauthorized, "Token is not valid"},

	{service.ErrProductNotFound, http.StatusNotFound, "Product not found or unauthorized"},
	{service.ErrFileNotFound, http.StatusNotFound, "File not found or unauthorized."},
	{service.ErrFileContentNotFound, http.StatusNotFound, "File not found on server disk."},
	{service.ErrNoteNotFound, http.StatusNotFound, "Note not found or unauthorized."},
	{service.ErrNotFound, http.StatusNotFound, "Not found"},

	{service.ErrNoFields, http.StatusBadRequest, "No fields provided for update."},
	{service.ErrUnsupportedFileType, http.StatusBadRequest, "Only images (JPEG, JPG, PNG, GIF) and PDF files are allowed!"},
	{service.ErrFileTooLarge, http.StatusBadRequest, "File too large"},
}

// responseFromError returns the status code and the client-facing message
// for err. Unknown errors become a 500 whose message hides the cause.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, serverErrorMessage
}

// writeError logs err and writes its JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := responseFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteMessage(w, message, status)
}
