// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/go-journal-vault/internal/adapter"
	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
	"github.com/MKhiriev/go-journal-vault/internal/validators"
	"github.com/MKhiriev/go-journal-vault/models"
)

type mediaService struct {
	cryptoService JournalCryptoService
	mediaStore    adapter.MediaStore
	storage       store.TempFileStorage
	refValidator  validators.Validator

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewMediaService composes the file encryption path with a remote
// [adapter.MediaStore]. Downloaded ciphertext is staged in storage.
func NewMediaService(
	cryptoService JournalCryptoService,
	mediaStore adapter.MediaStore,
	storage store.TempFileStorage,
	refValidator validators.Validator,
	log *logger.Logger,
) MediaService {
	return &mediaService{
		cryptoService: cryptoService,
		mediaStore:    mediaStore,
		storage:       storage,
		refValidator:  refValidator,
		ids:           utils.NewUUIDGenerator(),
		logger:        log,
	}
}

func (m *mediaService) Upload(ctx context.Context, creds models.Credentials, sourcePath, mimeType string) (models.MediaRef, error) {
	if mimeType == "" {
		mimeType = detectMimeType(sourcePath)
	}

	enc, err := m.cryptoService.EncryptFileForUpload(ctx, creds, sourcePath)
	if err != nil {
		return models.MediaRef{}, err
	}
	defer m.release(enc.Release)

	body, err := os.Open(enc.Path)
	if err != nil {
		return models.MediaRef{}, mapStoreError(fmt.Errorf("open encrypted file: %w", err))
	}
	defer body.Close()

	ref, err := m.mediaStore.Upload(ctx, models.MediaRef{
		ID:       m.ids.Generate(),
		IV:       enc.IV,
		MimeType: mimeType,
		Size:     enc.Size,
	}, body)
	if err != nil {
		return models.MediaRef{}, mapAdapterError(err)
	}

	m.logger.Info().
		Str("op", "upload_media").
		Str("mime", mimeType).
		Int64("size", ref.Size).
		Msg("media uploaded")

	return ref, nil
}

func (m *mediaService) Download(ctx context.Context, creds models.Credentials, ref models.MediaRef) (*crypto.DecryptedFile, error) {
	if err := m.refValidator.Validate(ctx, ref); err != nil {
		return nil, fmt.Errorf("%w: %w", crypto.ErrMalformedRecord, err)
	}

	staged, err := m.storage.Create(ctx, store.PurposeEncrypted, "")
	if err != nil {
		return nil, mapStoreError(err)
	}
	stagedPath := staged.Name()
	defer m.release(func() error { return m.storage.Remove(stagedPath) })

	err = m.mediaStore.Download(ctx, ref, &stagedWriter{w: staged})
	closeErr := staged.Close()
	if err != nil {
		return nil, mapAdapterError(err)
	}
	if closeErr != nil {
		return nil, mapStoreError(fmt.Errorf("close staged file: %w", closeErr))
	}

	file, err := m.cryptoService.DecryptAndDisplay(ctx, creds, stagedPath, ref.IV, ref.MimeType)
	if err != nil {
		return nil, err
	}

	m.logger.Info().
		Str("op", "download_media").
		Str("mime", file.MimeType).
		Int64("size", file.Size).
		Msg("media downloaded")

	return file, nil
}

func (m *mediaService) release(fn func() error) {
	if err := fn(); err != nil {
		m.logger.Error().Err(err).Msg("failed to remove temp file")
	}
}

// detectMimeType sniffs path and returns its MIME type without parameters.
// Unreadable files give "" and are reported by the encryption step.
func detectMimeType(path string) string {
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	base, _, _ := strings.Cut(detected.String(), ";")
	return strings.TrimSpace(base)
}

// stagedWriter tags local write failures as storage errors, so a full disk
// is not reported as a remote store failure.
type stagedWriter struct {
	w io.Writer
}

func (s *stagedWriter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		err = fmt.Errorf("%w: write staged file: %w", crypto.ErrStorage, err)
	}
	return n, err
}

// disabledMediaService is used when no adapter is configured.
type disabledMediaService struct{}

func (disabledMediaService) Upload(context.Context, models.Credentials, string, string) (models.MediaRef, error) {
	return models.MediaRef{}, ErrMediaStoreDisabled
}

func (disabledMediaService) Download(context.Context, models.Credentials, models.MediaRef) (*crypto.DecryptedFile, error) {
	return nil, ErrMediaStoreDisabled
}
