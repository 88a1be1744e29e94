// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server together with
// its background workers.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown of the listener and the workers.
package server
