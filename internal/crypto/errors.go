// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Error taxonomy of the engine. Values are wrapped with additional context,
// so callers must match with [errors.Is].
var (
	// ErrInvalidInput is returned when the password or the account
	// identifier passed to key derivation is empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidKey is returned when key material is missing, destroyed or
	// not exactly KeySize bytes long.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidIV is returned when an IV is not exactly IVSize bytes long.
	ErrInvalidIV = errors.New("invalid iv")

	// ErrMalformedRecord is returned when the base64/hex framing of an
	// encrypted record is broken or one of its fields is missing.
	ErrMalformedRecord = errors.New("malformed encrypted record")

	// ErrDecryptionFailed means the key or IV does not match the ciphertext,
	// or the ciphertext is corrupted. In practice: the user typed the wrong
	// password. It is not transient and must not be retried.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrFileNotFound is returned when the source file of a file operation
	// does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrStorage is returned when reading the source or writing a temporary
	// file fails (disk full, permissions, I/O error).
	ErrStorage = errors.New("storage error")

	// ErrUnsupportedKDF is returned for an unknown key derivation algorithm.
	ErrUnsupportedKDF = errors.New("unsupported key derivation algorithm")
)
