// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-product-tracker/internal/config"
	"github.com/MKhiriev/go-product-tracker/internal/logger"
)

// Storages aggregates every repository and the payload storage used by the
// service layer.
type Storages struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
	FileRepository    FileRepository
	NoteRepository    NoteRepository
	FileStorage       FileStorage
}

// NewStorages wires all PostgreSQL repositories over db together with the
// payload storage selected by cfg.Files.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	fileStorage, err := NewFileStorage(ctx, cfg.Files, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ProductRepository: NewProductRepository(db, logger),
		FileRepository:    NewFileRepository(db, logger),
		NoteRepository:    NewNoteRepository(db, logger),
		FileStorage:       fileStorage,
	}, nil
}

// NewFileStorage returns the payload storage for the configured backend.
func NewFileStorage(ctx context.Context, cfg config.Files, logger *logger.Logger) (FileStorage, error) {
	switch cfg.Backend {
	case config.FilesBackendS3:
		return NewS3FileStorage(ctx, cfg, logger)
	case config.FilesBackendDisk, "":
		return NewDiskFileStorage(cfg.Dir, logger)
	default:
		return nil, fmt.Errorf("unknown files backend %q", cfg.Backend)
	}
}
