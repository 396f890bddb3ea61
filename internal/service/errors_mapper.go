// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal-vault/internal/adapter"
	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/validators"
)

// IsWrongPassword reports whether err means the password (or account id)
// does not match the one the data was encrypted with.
func IsWrongPassword(err error) bool {
	return errors.Is(err, crypto.ErrDecryptionFailed)
}

// mapValidationError sorts password validator errors into missing input and
// policy violations.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, validators.ErrPasswordEmpty),
		errors.Is(err, validators.ErrInvalidAccountID):
		return fmt.Errorf("%w: %w", crypto.ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %w", ErrPasswordRejected, err)
	}
}

// mapAdapterError translates transport errors of the media store into the
// crypto error taxonomy.
func mapAdapterError(err error) error {
	if err == nil || isCancellation(err) {
		return err
	}

	switch {
	case errors.Is(err, crypto.ErrStorage):
		return err
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", crypto.ErrFileNotFound, err)
	case errors.Is(err, adapter.ErrMissingMediaID):
		return fmt.Errorf("%w: %w", crypto.ErrMalformedRecord, err)
	default:
		return fmt.Errorf("%w: %w", ErrRemoteStore, err)
	}
}

// mapStoreError marks temp file failures as storage errors.
func mapStoreError(err error) error {
	if err == nil || isCancellation(err) {
		return err
	}
	return fmt.Errorf("%w: %w", crypto.ErrStorage, err)
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
