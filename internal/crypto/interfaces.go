// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto is the client-side zero-knowledge encryption engine.
//
// Everything here runs on the device. A key is re-derived from the user's
// password and account identifier for every operation, used to encrypt or
// decrypt a text field or a media file, and destroyed afterwards. The server
// only ever receives ciphertext together with its IV.
//
// Layers, leaf first:
//
//	KeyDeriver      password + accountID -> KeyMaterial (PBKDF2-SHA256 or Argon2id)
//	SymmetricCipher AES-256-CBC with PKCS#7 padding, fresh random IV per call
//	TextCodec       UTF-8 text <-> EncryptedRecord{base64 ciphertext, hex IV}
//	FileCodec       file on disk <-> encrypted/decrypted temp file handles
package crypto

import (
	"context"
	"io"

	"github.com/MKhiriev/go-journal-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a password and a stable account identifier into key
// material. Implementations are pure: the same inputs give byte-identical
// output on every call, in every process, on every platform.
type KeyDeriver interface {
	// Derive returns a fresh 32-byte key. It fails with [ErrInvalidInput]
	// when password or accountID is empty.
	Derive(password, accountID string) (*KeyMaterial, error)

	// Algorithm names the derivation function, e.g. "pbkdf2-sha256".
	Algorithm() string
}

// SymmetricCipher encrypts and decrypts byte buffers and streams.
type SymmetricCipher interface {
	// Encrypt generates a new random IV and returns the ciphertext with it.
	Encrypt(plaintext []byte, key *KeyMaterial) (ciphertext, iv []byte, err error)

	// Decrypt reverses Encrypt. A wrong key or IV is reported as
	// [ErrDecryptionFailed], never as garbage plaintext with a nil error.
	Decrypt(ciphertext []byte, key *KeyMaterial, iv []byte) ([]byte, error)

	// EncryptStream encrypts src into dst chunk by chunk. The output is
	// identical to Encrypt over the whole input with the same IV.
	EncryptStream(ctx context.Context, dst io.Writer, src io.Reader, key *KeyMaterial) (iv []byte, err error)

	// DecryptStream decrypts src into dst chunk by chunk. Plaintext may
	// already be written to dst when padding validation fails at the end,
	// so callers must discard dst on error.
	DecryptStream(ctx context.Context, dst io.Writer, src io.Reader, key *KeyMaterial, iv []byte) error
}

// TextCodec encrypts journal text fields into transport records.
type TextCodec interface {
	EncryptText(text string, key *KeyMaterial) (models.EncryptedRecord, error)
	DecryptText(record models.EncryptedRecord, key *KeyMaterial) (string, error)
}

// FileCodec runs media files through the cipher using temporary files.
// Both results are handles whose Release method deletes the temp file.
type FileCodec interface {
	// EncryptFile writes the ciphertext of sourcePath to a new temp file.
	// The source file is never modified.
	EncryptFile(ctx context.Context, sourcePath string, key *KeyMaterial) (*EncryptedFile, error)

	// DecryptFile writes the plaintext of sourcePath to a new temp file
	// named after mimeType. An empty mimeType is detected from content.
	DecryptFile(ctx context.Context, sourcePath, iv string, key *KeyMaterial, mimeType string) (*DecryptedFile, error)
}
