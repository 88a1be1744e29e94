// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-product-tracker/internal/logger"
)

// diskFileStorage keeps payloads as plain files under a root directory.
// Paths handed out by Path are relative to the working directory whenever
// the configured directory is.
type diskFileStorage struct {
	dir    string
	root   string
	logger *logger.Logger
}

// NewDiskFileStorage constructs a [FileStorage] rooted at dir, creating the
// directory when it does not exist.
func NewDiskFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving files directory %q: %w", dir, err)
	}

	if err = os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("error creating files directory %q: %w", root, err)
	}

	logger.Debug().Str("root", root).Msg("creating disk file storage")
	return &diskFileStorage{dir: filepath.Clean(dir), root: root, logger: logger}, nil
}

// Path implements [FileStorage]. Directory components of filename are
// dropped, so the result always lies directly under the root.
func (d *diskFileStorage) Path(filename string) string {
	return filepath.Join(d.dir, filepath.Base(filename))
}

// Save implements [FileStorage]. The file must not exist yet; a partially
// written file is removed on failure.
func (d *diskFileStorage) Save(ctx context.Context, path string, r io.Reader) (int64, error) {
	if err := d.checkPath(path); err != nil {
		return 0, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return 0, fmt.Errorf("error creating file: %w", err)
	}

	written, copyErr := io.Copy(file, readerWithContext(ctx, r))
	closeErr := file.Close()
	if err = errors.Join(copyErr, closeErr); err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			logger.FromContext(ctx).Err(rmErr).
				Str("func", "diskFileStorage.Save").
				Str("path", path).
				Msg("failed to remove partially written file")
		}
		return 0, fmt.Errorf("error writing file: %w", err)
	}

	return written, nil
}

// Open implements [FileStorage].
func (d *diskFileStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := d.checkPath(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	return file, nil
}

// Remove implements [FileStorage].
func (d *diskFileStorage) Remove(ctx context.Context, path string) error {
	if err := d.checkPath(path); err != nil {
		return err
	}

	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing file: %w", err)
	}

	return nil
}

// checkPath rejects paths outside the storage root.
func (d *diskFileStorage) checkPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving path %q: %w", path, err)
	}

	rel, err := filepath.Rel(d.root, abs)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return fmt.Errorf("path %q is outside of files directory", path)
	}
	return nil
}

// ctxReader stops reading once its context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
