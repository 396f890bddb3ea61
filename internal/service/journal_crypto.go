// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
	"github.com/MKhiriev/go-journal-vault/internal/validators"
	"github.com/MKhiriev/go-journal-vault/models"
)

type journalCryptoService struct {
	deriver crypto.KeyDeriver
	text    crypto.TextCodec
	files   crypto.FileCodec

	passwordValidator validators.Validator
	entryValidator    validators.Validator

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewJournalCryptoService wires the engine components into a
// [JournalCryptoService].
func NewJournalCryptoService(
	deriver crypto.KeyDeriver,
	text crypto.TextCodec,
	files crypto.FileCodec,
	passwordValidator validators.Validator,
	entryValidator validators.Validator,
	log *logger.Logger,
) JournalCryptoService {
	return &journalCryptoService{
		deriver:           deriver,
		text:              text,
		files:             files,
		passwordValidator: passwordValidator,
		entryValidator:    entryValidator,
		ids:               utils.NewUUIDGenerator(),
		logger:            log,
	}
}

func (s *journalCryptoService) ValidatePassword(ctx context.Context, password string) error {
	return s.passwordValidator.Validate(ctx, password)
}

func (s *journalCryptoService) PasswordStrength(password string) (int, validators.StrengthLevel) {
	return validators.Strength(password)
}

// deriveKey validates creds and derives the key for one operation. On the
// encrypt path the full password policy applies; decryption only needs both
// credentials present, so data written under an older policy stays readable.
func (s *journalCryptoService) deriveKey(ctx context.Context, creds models.Credentials, enforcePolicy bool) (*crypto.KeyMaterial, error) {
	fields := []string{validators.FieldCredentials}
	if enforcePolicy {
		fields = append(fields, validators.FieldPassword)
	}
	if err := s.passwordValidator.Validate(ctx, creds, fields...); err != nil {
		return nil, mapValidationError(err)
	}

	start := time.Now()
	key, err := s.deriver.Derive(creds.Password, creds.AccountID)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	s.logger.Debug().
		Str("op", "derive_key").
		Str("kdf", s.deriver.Algorithm()).
		Dur("took", time.Since(start)).
		Msg("key derived")

	return key, nil
}

func (s *journalCryptoService) EncryptText(ctx context.Context, creds models.Credentials, text string) (models.EncryptedRecord, error) {
	key, err := s.deriveKey(ctx, creds, true)
	if err != nil {
		return models.EncryptedRecord{}, err
	}
	defer key.Destroy()

	record, err := s.text.EncryptText(text, key)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("encrypt text: %w", err)
	}

	s.logger.Debug().
		Str("op", "encrypt_text").
		Int("size", len(text)).
		Msg("text encrypted")

	return record, nil
}

func (s *journalCryptoService) DecryptText(ctx context.Context, creds models.Credentials, record models.EncryptedRecord) (string, error) {
	key, err := s.deriveKey(ctx, creds, false)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	text, err := s.text.DecryptText(record, key)
	if err != nil {
		s.logFailure("decrypt_text", err)
		return "", fmt.Errorf("decrypt text: %w", err)
	}
	return text, nil
}

func (s *journalCryptoService) EncryptEntry(ctx context.Context, creds models.Credentials, plain models.PlainEntry) (models.Entry, error) {
	key, err := s.deriveKey(ctx, creds, true)
	if err != nil {
		return models.Entry{}, err
	}
	defer key.Destroy()

	entry := models.Entry{
		ClientSideID: plain.ClientSideID,
		PrivacyLevel: models.ZeroKnowledge,
		Media:        plain.Media,
		CreatedAt:    plain.CreatedAt,
	}
	if entry.ClientSideID == "" {
		entry.ClientSideID = s.ids.Generate()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	if plain.Title != "" {
		if entry.Title, err = s.text.EncryptText(plain.Title, key); err != nil {
			return models.Entry{}, fmt.Errorf("encrypt title: %w", err)
		}
	}
	if entry.Body, err = s.text.EncryptText(plain.Body, key); err != nil {
		return models.Entry{}, fmt.Errorf("encrypt body: %w", err)
	}

	s.logger.Debug().
		Str("op", "encrypt_entry").
		Int("media", len(entry.Media)).
		Msg("entry encrypted")

	return entry, nil
}

func (s *journalCryptoService) DecryptEntry(ctx context.Context, creds models.Credentials, entry models.Entry) (models.PlainEntry, error) {
	if err := s.entryValidator.Validate(ctx, entry, validators.FieldPrivacyLevel); err != nil {
		return models.PlainEntry{}, fmt.Errorf("%w: %w", crypto.ErrMalformedRecord, err)
	}
	if entry.PrivacyLevel == models.ServerManaged {
		return models.PlainEntry{}, ErrServerManagedEntry
	}
	if err := s.entryValidator.Validate(ctx, entry); err != nil {
		return models.PlainEntry{}, fmt.Errorf("%w: %w", crypto.ErrMalformedRecord, err)
	}

	key, err := s.deriveKey(ctx, creds, false)
	if err != nil {
		return models.PlainEntry{}, err
	}
	defer key.Destroy()

	plain := models.PlainEntry{
		ClientSideID: entry.ClientSideID,
		Media:        entry.Media,
		CreatedAt:    entry.CreatedAt,
	}
	if !entry.Title.IsZero() {
		if plain.Title, err = s.text.DecryptText(entry.Title, key); err != nil {
			s.logFailure("decrypt_entry", err)
			return models.PlainEntry{}, fmt.Errorf("decrypt title: %w", err)
		}
	}
	if plain.Body, err = s.text.DecryptText(entry.Body, key); err != nil {
		s.logFailure("decrypt_entry", err)
		return models.PlainEntry{}, fmt.Errorf("decrypt body: %w", err)
	}

	return plain, nil
}

func (s *journalCryptoService) EncryptFileForUpload(ctx context.Context, creds models.Credentials, sourcePath string) (*crypto.EncryptedFile, error) {
	key, err := s.deriveKey(ctx, creds, true)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	return s.files.EncryptFile(ctx, sourcePath, key)
}

func (s *journalCryptoService) DecryptAndDisplay(ctx context.Context, creds models.Credentials, sourcePath, iv, mimeType string) (*crypto.DecryptedFile, error) {
	key, err := s.deriveKey(ctx, creds, false)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	file, err := s.files.DecryptFile(ctx, sourcePath, iv, key, mimeType)
	if err != nil {
		s.logFailure("decrypt_file", err)
		return nil, err
	}
	return file, nil
}

// logFailure records the error class of a failed decryption. The error text
// itself is not logged.
func (s *journalCryptoService) logFailure(op string, err error) {
	class := "other"
	switch {
	case IsWrongPassword(err):
		class = "decryption_failed"
	case errors.Is(err, crypto.ErrMalformedRecord):
		class = "malformed_record"
	case errors.Is(err, crypto.ErrInvalidIV):
		class = "invalid_iv"
	case errors.Is(err, crypto.ErrStorage):
		class = "storage"
	case isCancellation(err):
		class = "cancelled"
	}

	s.logger.Warn().
		Str("op", op).
		Str("class", class).
		Msg("decryption failed")
}
