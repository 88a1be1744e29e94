// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "non-positive token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 40 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:   "debug log level",
			mutate: func(cfg *StructuredConfig) { cfg.App.LogLevel = "debug" },
		},
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown files backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Files.Backend = "ftp" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "s3 without bucket",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Files.Backend = FilesBackendS3 },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "s3 with bucket",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Files.Backend = FilesBackendS3
				cfg.Storage.Files.S3.Bucket = "products"
			},
		},
		{
			name:    "zero upload size",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Files.MaxUploadSize = 0 },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:   "request timeout disabled",
			mutate: func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
		},
		{
			name:    "zero auth rate limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.AuthRateLimit = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero sweep interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SweepInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
