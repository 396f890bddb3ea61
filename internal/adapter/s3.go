// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/models"
)

// Object metadata keys. S3 sends them as x-amz-meta-* headers.
const (
	metaIV       = "iv"
	metaMimeType = "mime-type"

	s3Scheme = "s3://"
)

// S3Config configures [NewS3MediaStore].
type S3Config struct {
	Bucket string
	Region string
	// Endpoint overrides the AWS endpoint (MinIO, localstack). Path-style
	// addressing is always used.
	Endpoint string
	// Prefix is prepended to every object key.
	Prefix string

	AccessKeyID     string
	SecretAccessKey string
}

type s3MediaStore struct {
	client *s3.Client
	bucket string
	prefix string

	logger *logger.Logger
}

// NewS3MediaStore constructs an S3 implementation of [MediaStore]. Static
// credentials are used when both keys are set, otherwise requests go out
// unsigned (anonymous bucket access).
func NewS3MediaStore(cfg S3Config, log *logger.Logger) (MediaStore, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, ErrMissingBucket
	}

	opts := s3.Options{
		Region:                     cfg.Region,
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	}
	if cfg.Endpoint != "" {
		endpoint, err := normalizeBaseURL(cfg.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
		}
		opts.BaseEndpoint = aws.String(endpoint)
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	} else {
		opts.Credentials = aws.AnonymousCredentials{}
	}

	return &s3MediaStore{
		client: s3.New(opts),
		bucket: cfg.Bucket,
		prefix: strings.TrimLeft(cfg.Prefix, "/"),
		logger: log,
	}, nil
}

func (s *s3MediaStore) key(id string) string {
	return s.prefix + id
}

// objectKey resolves the key for ref: an s3:// URL for this bucket wins,
// then the ID.
func (s *s3MediaStore) objectKey(ref models.MediaRef) (string, error) {
	if rest, ok := strings.CutPrefix(ref.URL, s3Scheme); ok {
		bucket, key, found := strings.Cut(rest, "/")
		if found && bucket == s.bucket && key != "" {
			return key, nil
		}
	}
	if ref.ID == "" {
		return "", ErrMissingMediaID
	}
	return s.key(ref.ID), nil
}

// Upload implements [MediaStore].
func (s *s3MediaStore) Upload(ctx context.Context, ref models.MediaRef, body io.ReadSeeker) (models.MediaRef, error) {
	if ref.ID == "" {
		return ref, ErrMissingMediaID
	}

	size, err := body.Seek(0, io.SeekEnd)
	if err != nil {
		return ref, fmt.Errorf("measure media body: %w", err)
	}
	if _, err = body.Seek(0, io.SeekStart); err != nil {
		return ref, fmt.Errorf("rewind media body: %w", err)
	}

	key := s.key(ref.ID)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("application/octet-stream"),
		Metadata: map[string]string{
			metaIV:       ref.IV,
			metaMimeType: ref.MimeType,
		},
	})
	if err != nil {
		return ref, fmt.Errorf("put object: %w", mapS3Error(err))
	}

	ref.URL = s3Scheme + s.bucket + "/" + key
	ref.Size = size

	s.logger.Debug().
		Str("op", "upload_media").
		Str("backend", "s3").
		Int64("size", size).
		Msg("media uploaded")

	return ref, nil
}

// Download implements [MediaStore].
func (s *s3MediaStore) Download(ctx context.Context, ref models.MediaRef, dst io.Writer) error {
	key, err := s.objectKey(ref)
	if err != nil {
		return err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("get object: %w", mapS3Error(err))
	}
	defer out.Body.Close()

	n, err := io.Copy(dst, out.Body)
	if err != nil {
		return fmt.Errorf("download media body: %w", err)
	}

	s.logger.Debug().
		Str("op", "download_media").
		Str("backend", "s3").
		Int64("size", n).
		Msg("media downloaded")

	return nil
}
