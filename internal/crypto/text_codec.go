// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-journal-vault/models"
)

// textCodec implements [TextCodec] on top of a [SymmetricCipher].
type textCodec struct {
	cipher SymmetricCipher
}

// NewTextCodec returns a [TextCodec] that encodes ciphertext as standard
// base64 and the IV as lowercase hex.
func NewTextCodec(cipher SymmetricCipher) TextCodec {
	return &textCodec{cipher: cipher}
}

// EncryptText implements [TextCodec].
func (c *textCodec) EncryptText(text string, key *KeyMaterial) (models.EncryptedRecord, error) {
	plaintext := []byte(text)
	defer Wipe(plaintext)

	ciphertext, iv, err := c.cipher.Encrypt(plaintext, key)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("encrypt text: %w", err)
	}

	return models.EncryptedRecord{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         hex.EncodeToString(iv),
	}, nil
}

// DecryptText implements [TextCodec]. Framing is validated before the
// cipher runs; a plaintext that is not valid UTF-8 is reported as
// [ErrDecryptionFailed] because only a wrong key produces one.
func (c *textCodec) DecryptText(record models.EncryptedRecord, key *KeyMaterial) (string, error) {
	if record.Ciphertext == "" {
		return "", fmt.Errorf("%w: ciphertext is missing", ErrMalformedRecord)
	}

	iv, err := DecodeIV(record.IV)
	if err != nil {
		return "", err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(record.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext is not base64: %w", ErrMalformedRecord, err)
	}

	plaintext, err := c.cipher.Decrypt(ciphertext, key, iv)
	if err != nil {
		return "", fmt.Errorf("decrypt text: %w", err)
	}
	defer Wipe(plaintext)

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", ErrDecryptionFailed)
	}

	return string(plaintext), nil
}

// DecodeIV parses a hex IV as carried in [models.EncryptedRecord]. Broken
// hex is [ErrMalformedRecord]; well-formed hex of the wrong length is
// [ErrInvalidIV].
func DecodeIV(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: iv is missing", ErrMalformedRecord)
	}
	iv, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: iv is not hex: %w", ErrMalformedRecord, err)
	}
	if err = checkIV(iv); err != nil {
		return nil, err
	}
	return iv, nil
}
