// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultDotEnvPath       = ".env"
	defaultHTTPAddress      = ":5000"
	defaultTokenDuration    = time.Hour
	defaultPasswordHashCost = 10
	defaultLogLevel         = "info"
	defaultFilesDir         = "uploads"
	defaultMaxUploadSize    = 5 << 20
	defaultAuthRateLimit    = 20
	defaultPendingUploadTTL = 15 * time.Minute
	defaultSweepInterval    = 5 * time.Minute
)

// defaultConfig is merged last, so it only fills fields no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			Files: Files{
				Backend:       FilesBackendDisk,
				Dir:           defaultFilesDir,
				MaxUploadSize: defaultMaxUploadSize,
			},
		},
		Server: Server{
			HTTPAddress:   defaultHTTPAddress,
			AuthRateLimit: defaultAuthRateLimit,
		},
		Workers: Workers{
			PendingUploadTTL: defaultPendingUploadTTL,
			SweepInterval:    defaultSweepInterval,
		},
	}
}
