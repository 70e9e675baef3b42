// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// s3ObjectStorage is the [ObjectStorage] implementation for Amazon S3 and
// S3-compatible servers such as MinIO.
type s3ObjectStorage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	logger  *logger.Logger
}

// NewS3ObjectStorage loads the default AWS credential chain and returns an
// [ObjectStorage] for cfg.Bucket. cfg.Endpoint and cfg.UsePathStyle allow
// pointing it at a self-hosted S3 implementation.
func NewS3ObjectStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (ObjectStorage, error) {
	opts := make([]func(*awsconfig.LoadOptions) error, 0, 1)
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3ObjectStorage(client, cfg.Bucket, log), nil
}

func newS3ObjectStorage(client *s3.Client, bucket string, log *logger.Logger) *s3ObjectStorage {
	log.Debug().Str("bucket", bucket).Msg("creating s3 object storage")
	return &s3ObjectStorage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		logger:  log,
	}
}

// PresignPut returns a URL the client can PUT the object body to.
func (s *s3ObjectStorage) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.presign.PresignPutObject(ctx, input, s3.WithPresignExpires(ttl))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("S3 presign PUT failed")
		return "", fmt.Errorf("%w: %w", ErrPresigning, err)
	}

	return req.URL, nil
}

// PresignGet returns a URL the client can GET the object body from.
func (s *s3ObjectStorage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("S3 presign GET failed")
		return "", fmt.Errorf("%w: %w", ErrPresigning, err)
	}

	return req.URL, nil
}

// Get reads the whole object. A missing key yields [ErrObjectNotFound].
func (s *s3ObjectStorage) Get(ctx context.Context, key string) ([]byte, error) {
	logger.FromContext(ctx).Debug().
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("S3 GET")

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("%w: GetObject: %w", ErrObjectRequest, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrObjectRequest, err)
	}

	return data, nil
}

// Delete removes the object. S3 treats deleting a missing key as success.
func (s *s3ObjectStorage) Delete(ctx context.Context, key string) error {
	logger.FromContext(ctx).Debug().
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("S3 DELETE")

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: DeleteObject: %w", ErrObjectRequest, err)
	}

	return nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
		return true
	}

	var respErr interface{ HTTPStatusCode() int }
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound
}
