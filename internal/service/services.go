// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-product-tracker/internal/config"
	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/store"
	"github.com/MKhiriev/go-product-tracker/internal/utils"
)

// Services aggregates the services used by the transport layer.
type Services struct {
	AuthService     AuthService
	ProductService  ProductService
	DocumentService DocumentService
}

// NewServices wires every service over storages. Product and document
// services are wrapped with their validation layer.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	productService := NewProductService(storages.ProductRepository, storages.FileStorage, logger)
	documentService := NewDocumentService(
		storages.FileRepository,
		storages.NoteRepository,
		storages.FileStorage,
		utils.NewUUIDGenerator(),
		logger,
	)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		ProductService:  NewProductValidationService().Wrap(productService),
		DocumentService: NewDocumentValidationService(cfg.Storage.Files.MaxUploadSize).Wrap(documentService),
	}
}
