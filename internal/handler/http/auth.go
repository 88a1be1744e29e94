// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/utils"
	"github.com/MKhiriev/go-product-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Register(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", result.User.ID).Msg("user successfully registered")

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Message: "User successfully registered",
		Token:   result.Token,
		User:    result.User,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", result.User.ID).Msg("user successfully logged in")

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Message: "User successfully logged in",
		Token:   result.Token,
		User:    result.User,
	}, http.StatusOK)
}
