// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
	"github.com/MKhiriev/go-journal-vault/models"
)

// Headers carried next to the opaque media body.
const (
	HeaderIV       = "X-Content-IV"
	HeaderMimeType = "X-Content-Type"
	HeaderHash     = "HashSHA256"

	mediaPath = "/api/media/"

	// maxErrorBody bounds how much of an error response is read into the
	// returned error.
	maxErrorBody = 4 << 10
)

type httpMediaStore struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// HTTPConfig configures [NewHTTPMediaStore].
type HTTPConfig struct {
	// Address is the backend base URL; a bare host:port gets "http://".
	Address string
	// RequestTimeout bounds a single request.
	RequestTimeout time.Duration
	// HashKey keys the HashSHA256 transport integrity header.
	HashKey string
}

// NewHTTPMediaStore constructs an HTTP/REST implementation of [MediaStore].
// Blobs are sent raw with PUT /api/media/{id}; the IV, MIME type and an
// HMAC of the body travel in headers.
func NewHTTPMediaStore(cfg HTTPConfig, log *logger.Logger) (MediaStore, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpMediaStore{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		hasher: utils.NewHasher(cfg.HashKey),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [MediaStore]. body is hashed first, rewound and then
// streamed as the request body.
func (h *httpMediaStore) Upload(ctx context.Context, ref models.MediaRef, body io.ReadSeeker) (models.MediaRef, error) {
	if ref.ID == "" {
		return ref, ErrMissingMediaID
	}

	digest, size, err := h.hasher.HashReader(body)
	if err != nil {
		return ref, fmt.Errorf("hash media body: %w", err)
	}
	if _, err = body.Seek(0, io.SeekStart); err != nil {
		return ref, fmt.Errorf("rewind media body: %w", err)
	}

	var result models.MediaUploadResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader(HeaderIV, ref.IV).
		SetHeader(HeaderMimeType, ref.MimeType).
		SetHeader(HeaderHash, digest).
		SetBody(body).
		SetResult(&result).
		Put(mediaPath + url.PathEscape(ref.ID))
	if err != nil {
		return ref, fmt.Errorf("upload media request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return ref, err
	}

	if result.ID != "" {
		ref.ID = result.ID
	}
	ref.URL = result.URL
	if ref.URL == "" {
		ref.URL = h.client.BaseURL + mediaPath + url.PathEscape(ref.ID)
	}
	ref.Size = size

	h.logger.Debug().
		Str("op", "upload_media").
		Int64("size", size).
		Msg("media uploaded")

	return ref, nil
}

// Download implements [MediaStore]. The body is streamed into dst; when the
// server sends a HashSHA256 header the HMAC is verified after the copy and a
// mismatch is reported as [ErrIntegrityMismatch].
func (h *httpMediaStore) Download(ctx context.Context, ref models.MediaRef, dst io.Writer) error {
	target := ref.URL
	if target == "" {
		if ref.ID == "" {
			return ErrMissingMediaID
		}
		target = mediaPath + url.PathEscape(ref.ID)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(target)
	if err != nil {
		return fmt.Errorf("download media request: %w", err)
	}
	raw := resp.RawBody()
	defer raw.Close()

	if status := resp.StatusCode(); status < 200 || status >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(raw, maxErrorBody))
		return mapHTTPStatus(status, string(msg))
	}

	digest, size, err := h.hasher.HashReader(io.TeeReader(raw, dst))
	if err != nil {
		return fmt.Errorf("download media body: %w", err)
	}

	if want := resp.Header().Get(HeaderHash); want != "" && !h.hasher.Verify(digest, want) {
		return ErrIntegrityMismatch
	}

	h.logger.Debug().
		Str("op", "download_media").
		Int64("size", size).
		Msg("media downloaded")

	return nil
}
