// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-f files directory
//	-files-backend files backend ("disk" or "s3")
//	-max-upload-size upload size cap in bytes
//	-s3-bucket s3 bucket name
//	-s3-region s3 region
//	-s3-endpoint s3 endpoint override
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-duration token duration (e.g., "1h", "30m")
//	-password-hash-cost bcrypt cost factor
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-auth-rate-limit register/login requests per minute per IP
//	-pending-upload-ttl age of abandoned uploads (e.g., "15m")
//	-sweep-interval abandoned uploads sweep interval (e.g., "5m")
//	-log-level minimum log level (e.g., "debug")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var filesDir, filesBackend string
	var maxUploadSize int64
	var s3Bucket, s3Region, s3Endpoint string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenDuration time.Duration
	var passwordHashCost int
	var logLevel string
	var requestTimeout time.Duration
	var authRateLimit int
	var pendingUploadTTL, sweepInterval time.Duration

	fs := flag.NewFlagSet(commandName(), flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&filesDir, "f", "", "Files directory")
	fs.StringVar(&filesBackend, "files-backend", "", "Files backend (disk or s3)")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Upload size cap in bytes")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket")
	fs.StringVar(&s3Region, "s3-region", "", "S3 region")
	fs.StringVar(&s3Endpoint, "s3-endpoint", "", "S3 endpoint override")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "Bcrypt cost factor")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&authRateLimit, "auth-rate-limit", 0, "Register/login requests per minute per IP")
	fs.DurationVar(&pendingUploadTTL, "pending-upload-ttl", 0, "Age of abandoned uploads (e.g., 15m)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Abandoned uploads sweep interval (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenDuration:    tokenDuration,
			PasswordHashCost: passwordHashCost,
			LogLevel:         logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				Backend:       filesBackend,
				Dir:           filesDir,
				MaxUploadSize: maxUploadSize,
				S3: S3{
					Bucket:   s3Bucket,
					Region:   s3Region,
					Endpoint: s3Endpoint,
				},
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AuthRateLimit:  authRateLimit,
		},
		Workers: Workers{
			PendingUploadTTL: pendingUploadTTL,
			SweepInterval:    sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func commandName() string {
	if len(os.Args) == 0 {
		return "server"
	}
	return os.Args[0]
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
