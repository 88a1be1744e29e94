// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/utils"
)

// authTokenHeader carries the token on every protected request.
const authTokenHeader = utils.AuthTokenHeader

// auth is an HTTP middleware that enforces token-based authentication.
//
// The token is read from the "X-Auth-Token" header. When that header is
// absent, an "Authorization: Bearer <token>" header is accepted instead.
// The token is verified via [service.AuthService.ParseToken] and, on
// success, the caller's identity is stored in the request context with
// [utils.WithIdentity] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - no token is sent ([service.ErrMissingToken]);
//   - the token is malformed, forged or expired ([service.ErrInvalidToken]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("unreadable authorization header")
		}

		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithIdentity(ctx, identity)
		ctx = logger.WithUser(ctx, identity.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest returns the raw token of r, or an empty string when none
// was sent. A malformed "Authorization" header yields
// [ErrInvalidAuthorizationHeader] and its raw value, which then fails
// verification.
func tokenFromRequest(r *http.Request) (string, error) {
	if token := strings.TrimSpace(r.Header.Get(authTokenHeader)); token != "" {
		return token, nil
	}

	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if authHeader == "" {
		return "", nil
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return authHeader, ErrInvalidAuthorizationHeader
	}

	return token, nil
}
