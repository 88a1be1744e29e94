// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server owns the HTTP listener and the background workers.
type Server interface {
	// RunServer serves until a termination signal, then shuts everything down.
	RunServer()

	// Shutdown stops the HTTP listener without waiting for a signal.
	Shutdown()
}
