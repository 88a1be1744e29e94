// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// Chi calls it only after the path matched and the method did not, so it
// answers 404 "Route not found" and an unsupported method looks exactly like
// an unknown route. It must not dispatch back into the router: the root of a
// mounted sub-router matches for every method and the request would come
// straight back here.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not registered for path")

	routeNotFound(w, r)
}
