// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-product-tracker/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.root)

	// routes without authorization
	router.Group(func(r chi.Router) {
		if h.authRateLimit > 0 {
			r.Use(httprate.Limit(
				h.authRateLimit,
				time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(tooManyRequests),
			))
		}

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/products", func(r chi.Router) {
			r.Post("/", h.createProduct)
			r.Get("/", h.listProducts)
			r.Get("/{id}", h.getProduct)
			r.Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
		})

		r.Route("/api/documents", func(r chi.Router) {
			r.Post("/upload/{productId}/{fileType}", h.uploadFile)
			r.Get("/product/{productId}/files", h.listFiles)
			r.Get("/file/{fileId}/download", h.downloadFile)
			r.Delete("/file/{fileId}", h.deleteFile)

			r.Post("/notes/{productId}", h.createNote)
			r.Get("/product/{productId}/notes", h.listNotes)
			r.Put("/notes/{noteId}", h.updateNote)
			r.Delete("/notes/{noteId}", h.deleteNote)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Product Tracker Backend is running!"))
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteMessage(w, "Route not found", http.StatusNotFound)
}

func tooManyRequests(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteMessage(w, "Too many requests, please try again later.", http.StatusTooManyRequests)
}
