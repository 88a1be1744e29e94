// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "issued-token"

// newTestClient creates a Client pointed at the test server.
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c, err := NewClient(serverURL, 0, logger.Nop())
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func ptr[T any](v T) *T {
	return &v
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:5000", want: "http://localhost:5000"},
		{raw: " https://tracker.example.com/ ", want: "https://tracker.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestRegister_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Email: "u1@x.io", Password: "p1"}, creds)

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			Message: "User successfully registered",
			Token:   testToken,
			User:    models.Identity{ID: 1, Email: "u1@x.io"},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Register(context.Background(), models.Credentials{Email: "u1@x.io", Password: "p1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.User.ID)
	assert.Equal(t, testToken, c.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "Invalid Credentials"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), models.Credentials{Email: "u1@x.io", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Invalid Credentials")
	assert.Empty(t, c.Token())
}

func TestLogin_ResponseWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{Message: "User successfully logged in"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), models.Credentials{Email: "u1@x.io", Password: "p1"})

	assert.Error(t, err)
}

// ── Products ─────────────────────────────────────────────────────────────────

func TestProducts_SendToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testToken, r.Header.Get("X-Auth-Token"))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/products":
			var details models.ProductDetails
			require.NoError(t, json.NewDecoder(r.Body).Decode(&details))
			writeJSON(t, w, http.StatusCreated, models.ProductResponse{
				Message: "Product added successfully.",
				Product: models.Product{ID: 7, UserID: 1, ProductDetails: details},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/api/products":
			writeJSON(t, w, http.StatusOK, models.ProductsResponse{
				Products: []models.Product{{ID: 7}, {ID: 6}},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/api/products/7":
			writeJSON(t, w, http.StatusOK, models.ProductResponse{Product: models.Product{ID: 7}})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/products/7":
			writeJSON(t, w, http.StatusOK, models.ProductDeletedResponse{Message: "Product removed successfully", ID: 7})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(" " + testToken + " ")
	ctx := context.Background()

	created, err := c.CreateProduct(ctx, models.ProductDetails{Name: "Smart TV", Category: "Electronics"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "Smart TV", created.Name)

	list, err := c.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	got, err := c.GetProduct(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)

	id, err := c.DeleteProduct(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestUpdateProduct_SendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/products/3", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"purchase_price":1250,"serial_number":null}`, string(body))

		writeJSON(t, w, http.StatusOK, models.ProductResponse{
			Product: models.Product{ID: 3, ProductDetails: models.ProductDetails{Name: "Smart TV", PurchasePrice: ptr(1250.0)}},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.UpdateProduct(context.Background(), 3, models.ProductPatch{
		PurchasePrice: models.Some(1250.0),
		SerialNumber:  models.Null[string](),
	})

	require.NoError(t, err)
	assert.Equal(t, "Smart TV", got.Name)
}

func TestGetProduct_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{"not found", http.StatusNotFound, `{"message":"Product not found or unauthorized"}`, ErrNotFound, "Product not found or unauthorized"},
		{"unauthorized", http.StatusUnauthorized, `{"message":"Token is not valid"}`, ErrUnauthorized, "Token is not valid"},
		{"rate limited", http.StatusTooManyRequests, `{"message":"Too many requests, please try again later."}`, ErrTooManyRequests, "Too many requests"},
		{"server error", http.StatusInternalServerError, `{"message":"Server error"}`, ErrServer, "Server error"},
		{"plain body", http.StatusBadGateway, "upstream down", ErrServer, "upstream down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			_, err := c.GetProduct(context.Background(), 1)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// ── Documents ────────────────────────────────────────────────────────────────

func TestUploadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/documents/upload/4/receipt", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile(uploadFieldName)
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)

		assert.Equal(t, "receipt.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))
		assert.Equal(t, "%PDF-1.7", string(content))
		assert.Equal(t, "bought in March", r.FormValue(descriptionFieldName))

		writeJSON(t, w, http.StatusCreated, models.FileResponse{
			Message: "File uploaded successfully!",
			File:    models.FileRecord{ID: "f-1", ProductID: 4, OriginalName: header.Filename},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.UploadFile(context.Background(), 4, models.FileTypeReceipt, UploadFile{
		Name:        "receipt.pdf",
		ContentType: "application/pdf",
		Description: ptr("bought in March"),
		Content:     strings.NewReader("%PDF-1.7"),
	})

	require.NoError(t, err)
	assert.Equal(t, "f-1", got.ID)
	assert.Equal(t, "receipt.pdf", got.OriginalName)
}

func TestUploadFile_WithoutFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		if assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			assert.Empty(t, r.MultipartForm.File)
			assert.Equal(t, []string{""}, r.MultipartForm.Value[descriptionFieldName])
		}
		writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "No file uploaded."})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.UploadFile(context.Background(), 4, models.FileTypeManual, UploadFile{})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "No file uploaded.")
}

func TestDownloadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/documents/file/f-1/download":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
		default:
			writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "File not found or unauthorized."})
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	body, err := c.DownloadFile(context.Background(), "f-1")
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, body.Close())
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)

	_, err = c.DownloadFile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "File not found or unauthorized.")
}

func TestFilesAndNotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /api/documents/product/4/files":
			writeJSON(t, w, http.StatusOK, models.FilesResponse{Files: []models.FileRecord{{ID: "f-1"}}})
		case "DELETE /api/documents/file/f-1":
			writeJSON(t, w, http.StatusOK, models.DocumentDeletedResponse{ID: "f-1"})
		case "POST /api/documents/notes/4":
			var req models.NoteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			writeJSON(t, w, http.StatusCreated, models.NoteResponse{Note: models.Note{ID: "n-1", ProductID: 4, Content: req.Content}})
		case "GET /api/documents/product/4/notes":
			writeJSON(t, w, http.StatusOK, models.NotesResponse{Notes: []models.Note{{ID: "n-1"}}})
		case "PUT /api/documents/notes/n-1":
			var req models.NoteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			writeJSON(t, w, http.StatusOK, models.NoteResponse{Note: models.Note{ID: "n-1", Content: req.Content}})
		case "DELETE /api/documents/notes/n-1":
			writeJSON(t, w, http.StatusOK, models.DocumentDeletedResponse{ID: "n-1"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	files, err := c.ListFiles(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, files, 1)

	fileID, err := c.DeleteFile(ctx, "f-1")
	require.NoError(t, err)
	assert.Equal(t, "f-1", fileID)

	note, err := c.CreateNote(ctx, 4, "check warranty")
	require.NoError(t, err)
	assert.Equal(t, "check warranty", note.Content)

	notes, err := c.ListNotes(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	updated, err := c.UpdateNote(ctx, "n-1", "warranty extended")
	require.NoError(t, err)
	assert.Equal(t, "warranty extended", updated.Content)

	noteID, err := c.DeleteNote(ctx, "n-1")
	require.NoError(t, err)
	assert.Equal(t, "n-1", noteID)
}
