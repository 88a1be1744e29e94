// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/mock"
	"github.com/MKhiriev/go-product-tracker/internal/service"
	"github.com/MKhiriev/go-product-tracker/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken         = "valid-token"
	testMaxUploadSize = 1 << 20
)

var testIdentity = models.Identity{ID: 5, Email: "u1@x.io"}

type testServices struct {
	auth      *mock.MockAuthService
	products  *mock.MockProductService
	documents *mock.MockDocumentService
}

// newTestRouter builds the full router over mocked services. Requests
// carrying testToken authenticate as testIdentity.
func newTestRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testServices{
		auth:      mock.NewMockAuthService(ctrl),
		products:  mock.NewMockProductService(ctrl),
		documents: mock.NewMockDocumentService(ctrl),
	}
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(testIdentity, nil).AnyTimes()

	h := &Handler{
		services: &service.Services{
			AuthService:     m.auth,
			ProductService:  m.products,
			DocumentService: m.documents,
		},
		maxUploadSize: testMaxUploadSize,
		logger:        logger.Nop(),
	}

	return h.Init(), m
}

// newAuthRequest returns a request authenticated with testToken.
func newAuthRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(authTokenHeader, testToken)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func responseMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeResponse[models.MessageResponse](t, rr).Message
}
