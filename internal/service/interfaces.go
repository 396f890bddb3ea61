// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service exposes the encryption engine to the UI layer.
//
// Every call receives the user's [models.Credentials]. A key is derived for
// that one call, used and destroyed before the call returns, so no key state
// lives between operations.
package service

import (
	"context"

	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/validators"
	"github.com/MKhiriev/go-journal-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// JournalCryptoService is the UI entry point for on-device encryption of
// journal text and media.
type JournalCryptoService interface {
	// ValidatePassword runs the password policy and reports every failing
	// rule joined into one error.
	ValidatePassword(ctx context.Context, password string) error

	// PasswordStrength scores password for a strength meter.
	PasswordStrength(password string) (int, validators.StrengthLevel)

	// EncryptText encrypts a single text field. The password policy is
	// enforced before the key is derived.
	EncryptText(ctx context.Context, creds models.Credentials, text string) (models.EncryptedRecord, error)

	// DecryptText decrypts a record produced by EncryptText. A wrong
	// password yields [crypto.ErrDecryptionFailed].
	DecryptText(ctx context.Context, creds models.Credentials, record models.EncryptedRecord) (string, error)

	// EncryptEntry encrypts title and body of a journal entry under one
	// derived key with separate IVs. The result is always zero-knowledge.
	EncryptEntry(ctx context.Context, creds models.Credentials, plain models.PlainEntry) (models.Entry, error)

	// DecryptEntry reverses EncryptEntry. Server-managed entries are rejected
	// with [ErrServerManagedEntry].
	DecryptEntry(ctx context.Context, creds models.Credentials, entry models.Entry) (models.PlainEntry, error)

	// EncryptFileForUpload encrypts a media file into a temp file. The caller
	// must Release the result.
	EncryptFileForUpload(ctx context.Context, creds models.Credentials, sourcePath string) (*crypto.EncryptedFile, error)

	// DecryptAndDisplay decrypts a downloaded media file into a temp file
	// ready to be shown. The caller must Release the result.
	DecryptAndDisplay(ctx context.Context, creds models.Credentials, sourcePath, iv, mimeType string) (*crypto.DecryptedFile, error)
}

// MediaService moves encrypted media between the device and the configured
// remote store.
type MediaService interface {
	// Upload encrypts sourcePath and stores the ciphertext remotely. An empty
	// mimeType is detected from the file content.
	Upload(ctx context.Context, creds models.Credentials, sourcePath, mimeType string) (models.MediaRef, error)

	// Download fetches the blob behind ref and decrypts it into a temp file.
	Download(ctx context.Context, creds models.Credentials, ref models.MediaRef) (*crypto.DecryptedFile, error)
}
