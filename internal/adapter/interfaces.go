// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter moves encrypted media blobs between the device and remote
// storage.
//
// The primary abstraction is [MediaStore]. It only ever sees ciphertext and
// the IV that goes with it; key material never reaches this package. Two
// implementations ship: an HTTP/REST one talking to the journal backend
// ([NewHTTPMediaStore]) and an S3 one writing straight to a bucket
// ([NewS3MediaStore]).
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] regardless of the backend.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-journal-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MediaStore uploads and downloads encrypted media blobs.
type MediaStore interface {
	// Upload stores body under ref.ID together with ref.IV and ref.MimeType
	// and returns ref with URL (and possibly ID) filled in. body is read
	// more than once, so it must be seekable.
	Upload(ctx context.Context, ref models.MediaRef, body io.ReadSeeker) (models.MediaRef, error)

	// Download streams the blob referenced by ref into dst.
	Download(ctx context.Context, ref models.MediaRef, dst io.Writer) error
}
