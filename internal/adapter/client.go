// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/utils"
	"github.com/MKhiriev/go-product-tracker/models"
	"github.com/go-resty/resty/v2"
)

const (
	uploadFieldName      = "productFile"
	descriptionFieldName = "description"
)

var _ ServerAdapter = (*Client)(nil)

// Client is the HTTP implementation of [ServerAdapter]. It is safe for
// concurrent use.
type Client struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewClient constructs a client for the server at baseURL. A missing scheme
// defaults to http. timeout bounds every request; zero means no limit.
func NewClient(baseURL string, timeout time.Duration, logger *logger.Logger) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &Client{
		client: utils.NewHTTPClient(normalized, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/register", credentials)
}

func (c *Client) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/login", credentials)
}

func (c *Client) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if result.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: response carries no token", path)
	}

	c.SetToken(result.Token)
	c.logger.Debug().Int64("user_id", result.User.ID).Msg("client authenticated")
	return result, nil
}

func (c *Client) CreateProduct(ctx context.Context, details models.ProductDetails) (models.Product, error) {
	var result models.ProductResponse
	if err := c.do(c.request(ctx).SetBody(details).SetResult(&result), resty.MethodPost, "/api/products"); err != nil {
		return models.Product{}, err
	}
	return result.Product, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var result models.ProductsResponse
	if err := c.do(c.request(ctx).SetResult(&result), resty.MethodGet, "/api/products"); err != nil {
		return nil, err
	}
	return result.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	var result models.ProductResponse
	if err := c.do(c.request(ctx).SetResult(&result), resty.MethodGet, productPath(productID)); err != nil {
		return models.Product{}, err
	}
	return result.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, productID int64, patch models.ProductPatch) (models.Product, error) {
	var result models.ProductResponse
	if err := c.do(c.request(ctx).SetBody(patch).SetResult(&result), resty.MethodPut, productPath(productID)); err != nil {
		return models.Product{}, err
	}
	return result.Product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, productID int64) (int64, error) {
	var result models.ProductDeletedResponse
	if err := c.do(c.request(ctx).SetResult(&result), resty.MethodDelete, productPath(productID)); err != nil {
		return 0, err
	}
	return result.ID, nil
}

func (c *Client) UploadFile(ctx context.Context, productID int64, fileType models.FileType, file UploadFile) (models.FileRecord, error) {
	var result models.FileResponse

	req := c.request(ctx).SetResult(&result)
	if file.Content != nil {
		req.SetMultipartField(uploadFieldName, file.Name, file.ContentType, file.Content)
	}
	// resty only switches to multipart once a part is added, so an upload
	// without a file always carries the description part, empty if unset
	if file.Description != nil || file.Content == nil {
		description := ""
		if file.Description != nil {
			description = *file.Description
		}
		req.SetMultipartField(descriptionFieldName, "", "", strings.NewReader(description))
	}

	path := fmt.Sprintf("/api/documents/upload/%d/%s", productID, url.PathEscape(string(fileType)))
	if err := c.do(req, resty.MethodPost, path); err != nil {
		return models.FileRecord{}, err
	}
	return result.File, nil
}

func (c *Client) ListFiles(ctx context.Context, productID int64) ([]models.FileRecord, error) {
	var result models.FilesResponse
	path := fmt.Sprintf("/api/documents/product/%d/files", productID)
	if err := c.do(c.request(ctx).SetResult(&result), resty.MethodGet, path); err != nil {
		return nil, err
	}
	return result.Files, nil
}

func (c *Client) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, error) {
	path := "/api/documents/file/" + url.PathEscape(fileID) + "/download"

	resp, err := c.request(ctx).SetDoNotParseResponse(true).Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s request: %w", path, err)
	}

	body := resp.RawBody()
	if resp.IsSuccess() {
		return body, nil
	}
	defer body.Close()

	data, readErr := io.ReadAll(body)
	if readErr != nil {
		return nil, fmt.Errorf("GET %s read error body: %w", path, readErr)
	}
	return nil, mapStatus(resp.StatusCode(), data)
}

func (c *Client) DeleteFile(ctx context.Context, fileID string) (string, error) {
	var result models.DocumentDeletedResponse
	path := "/api/documents/file/" + url.PathEscape(fileID)
	if err := c.do(c.request(ctx).SetResult(&result), resty.MethodDelete, path); err != nil {
		return "", err
	}
	return result.ID, nil
}

func (c *Client) CreateNote(ctx context.Context, productID int64, content string) (models.Note, error) {
	var result models.NoteResponse
	path := fmt.Sprintf("/api/documents/notes/%d", productID)
	req := c.request(ctx).SetBody(models.NoteRequest{Content: content}).SetResult(&result)
	if err := c.do(req, resty.MethodPost, path); err != nil {
		return models.Note{}, err
	}
	return result.Note, nil
}

func (c *Client) ListNotes(ctx context.Context, productID int64) ([]models.Note, error) {
	var result models.NotesResponse
	path := fmt.Sprintf("/api/documents/product/%d/notes", productID)
	if err := c.do(c.request(ctx).SetResult(&result), resty.MethodGet, path); err != nil {
		return nil, err
	}
	return result.Notes, nil
}

func (c *Client) UpdateNote(ctx context.Context, noteID, content string) (models.Note, error) {
	var result models.NoteResponse
	path := "/api/documents/notes/" + url.PathEscape(noteID)
	req := c.request(ctx).SetBody(models.NoteRequest{Content: content}).SetResult(&result)
	if err := c.do(req, resty.MethodPut, path); err != nil {
		return models.Note{}, err
	}
	return result.Note, nil
}

func (c *Client) DeleteNote(ctx context.Context, noteID string) (string, error) {
	var result models.DocumentDeletedResponse
	path := "/api/documents/notes/" + url.PathEscape(noteID)
	if err := c.do(c.request(ctx).SetResult(&result), resty.MethodDelete, path); err != nil {
		return "", err
	}
	return result.ID, nil
}

// request returns an authenticated request bound to ctx.
func (c *Client) request(ctx context.Context) *resty.Request {
	return c.client.WithToken(c.Token()).SetContext(ctx)
}

func (c *Client) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request rejected")
		return err
	}
	return nil
}

func productPath(productID int64) string {
	return "/api/products/" + strconv.FormatInt(productID, 10)
}
