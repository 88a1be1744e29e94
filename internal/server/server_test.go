// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-product-tracker/internal/config"
	"github.com/MKhiriev/go-product-tracker/internal/handler"
	handlerhttp "github.com/MKhiriev/go-product-tracker/internal/handler/http"
	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (r *countingRunner) Run(ctx context.Context) {
	r.started.Store(true)
	<-ctx.Done()
	r.stopped.Store(true)
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHTTPAddress(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestServer_RunAndStop(t *testing.T) {
	addr := freeAddress(t)
	cfg := config.Server{HTTPAddress: addr}
	handlers := &handler.Handlers{
		HTTP: handlerhttp.NewHandler(&service.Services{}, cfg, config.Files{}, logger.Nop()),
	}
	workers := &countingRunner{}

	srv, err := NewServer(handlers, workers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, workers.started.Load())

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop")
	}
	assert.True(t, workers.stopped.Load())
}

func TestServer_ListenFailureStopsWorkers(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := config.Server{HTTPAddress: l.Addr().String()}
	workers := &countingRunner{}
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop()),
		workers:    workers,
		logger:     logger.Nop(),
	}

	err = s.run(context.Background())

	assert.Error(t, err)
	assert.True(t, workers.stopped.Load())
}

func TestNewHTTPServer(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":5000"}, logger.Nop())

	assert.Equal(t, ":5000", h.server.Addr)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)
	assert.NotNil(t, h.server.Handler)
}
