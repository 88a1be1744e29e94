// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-product-tracker/internal/config"
	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request context; zero disables it.
	requestTimeout time.Duration

	// authRateLimit is the number of auth requests allowed per minute and IP;
	// zero disables the limit.
	authRateLimit int

	// maxUploadSize caps the payload of a single upload in bytes.
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, files config.Files, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		authRateLimit:  cfg.AuthRateLimit,
		maxUploadSize:  files.MaxUploadSize,
		logger:         logger,
	}
}
