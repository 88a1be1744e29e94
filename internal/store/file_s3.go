// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/MKhiriev/go-product-tracker/internal/config"
	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// s3API is the subset of *s3.Client used by s3FileStorage.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3FileStorage keeps payloads as objects of an S3-compatible bucket.
// Object keys are the stored filenames under an optional prefix.
type s3FileStorage struct {
	client s3API
	bucket string
	prefix string
	logger *logger.Logger
}

// NewS3FileStorage constructs a [FileStorage] backed by the bucket in cfg.S3.
// Static credentials are used when both keys are configured; otherwise the
// default AWS credential chain applies. A custom endpoint switches the client
// to path-style addressing for R2 and MinIO.
func NewS3FileStorage(ctx context.Context, cfg config.Files, logger *logger.Logger) (FileStorage, error) {
	opts := make([]func(*awsconfig.LoadOptions) error, 0, 2)
	if cfg.S3.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.S3.Region))
	}
	if cfg.S3.AccessKeyID != "" && cfg.S3.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Debug().Str("bucket", cfg.S3.Bucket).Msg("creating s3 file storage")
	return newS3FileStorage(client, cfg.S3.Bucket, cfg.Dir, logger), nil
}

func newS3FileStorage(client s3API, bucket, prefix string, logger *logger.Logger) *s3FileStorage {
	return &s3FileStorage{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Path implements [FileStorage].
func (s *s3FileStorage) Path(filename string) string {
	return path.Join(s.prefix, path.Base(filename))
}

// Save implements [FileStorage]. The payload is buffered so that the SDK can
// sign a body of known length; uploads are already capped in size.
func (s *s3FileStorage) Save(ctx context.Context, key string, r io.Reader) (int64, error) {
	body, err := io.ReadAll(readerWithContext(ctx, r))
	if err != nil {
		return 0, fmt.Errorf("error reading payload: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return 0, fmt.Errorf("error putting object: %w", err)
	}

	return int64(len(body)), nil
}

// Open implements [FileStorage].
func (s *s3FileStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if isS3NotFound(err) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting object: %w", err)
	}

	return obj.Body, nil
}

// Remove implements [FileStorage]. S3 deletes are idempotent, so a missing
// key is not an error.
func (s *s3FileStorage) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isS3NotFound(err) {
		return fmt.Errorf("error deleting object: %w", err)
	}

	return nil
}

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}

	return false
}
