// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal-vault/models"
)

// Field names accepted by [EntryValidator.Validate].
const (
	FieldClientSideID = "client_side_id"
	FieldPrivacyLevel = "privacy_level"
	FieldTitle        = "title"
	FieldBody         = "body"
	FieldMedia        = "media"
)

var allEntryFields = []string{FieldClientSideID, FieldPrivacyLevel, FieldTitle, FieldBody, FieldMedia}

// EntryValidator checks that a journal entry is well formed before its
// fields are decrypted. It does not look inside ciphertext.
type EntryValidator struct {
}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate accepts [models.Entry], a pointer to one, or [models.MediaRef].
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEntry(ctx, *value, fields...)
	case models.MediaRef:
		return validateMediaRef(value)
	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = allEntryFields
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldClientSideID:
			if entry.ClientSideID == "" {
				errs = append(errs, ErrInvalidClientSideID)
			}
		case FieldPrivacyLevel:
			if !entry.PrivacyLevel.IsValid() {
				errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidPrivacyLevel, entry.PrivacyLevel))
			}
		case FieldTitle:
			errs = append(errs, validateRecord(FieldTitle, entry.Title, true))
		case FieldBody:
			errs = append(errs, validateRecord(FieldBody, entry.Body, false))
		case FieldMedia:
			for i, ref := range entry.Media {
				if err := validateMediaRef(ref); err != nil {
					errs = append(errs, fmt.Errorf("media[%d]: %w", i, err))
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return errors.Join(errs...)
}

// validateRecord requires ciphertext and IV to be set together. An optional
// record may be entirely empty.
func validateRecord(name string, r models.EncryptedRecord, optional bool) error {
	if optional && r.IsZero() {
		return nil
	}
	if r.Ciphertext == "" || r.IV == "" {
		return fmt.Errorf("%w: %s", ErrEmptyEncryptedField, name)
	}
	return nil
}

func validateMediaRef(ref models.MediaRef) error {
	if ref.ID == "" && ref.URL == "" {
		return fmt.Errorf("%w: id or url is required", ErrInvalidMediaRef)
	}
	if ref.IV == "" {
		return fmt.Errorf("%w: iv is required", ErrInvalidMediaRef)
	}
	return nil
}
