// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"fmt"
	"runtime"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// IVSize is the CBC initialization vector length in bytes.
	IVSize = 16
)

const redacted = "KeyMaterial([redacted])"

// KeyMaterial is the derived symmetric key. It stays a raw byte buffer from
// derivation to the block cipher and is never turned into a string.
//
// A KeyMaterial belongs to the one operation that derived it. Call Destroy
// when the operation is over; a destroyed key is rejected with
// [ErrInvalidKey].
type KeyMaterial struct {
	b []byte
}

// NewKeyMaterial copies raw into a new KeyMaterial. raw must be exactly
// KeySize bytes.
func NewKeyMaterial(raw []byte) (*KeyMaterial, error) {
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidKey, KeySize, len(raw))
	}
	b := make([]byte, KeySize)
	copy(b, raw)
	return &KeyMaterial{b: b}, nil
}

// bytes returns the key for use by the block cipher, or an error when the
// key is nil or destroyed.
func (k *KeyMaterial) bytes() ([]byte, error) {
	if k == nil || len(k.b) != KeySize {
		return nil, fmt.Errorf("%w: key material is missing or destroyed", ErrInvalidKey)
	}
	return k.b, nil
}

// Equal compares two keys in constant time.
func (k *KeyMaterial) Equal(other *KeyMaterial) bool {
	if k == nil || other == nil {
		return false
	}
	return len(k.b) == len(other.b) && subtle.ConstantTimeCompare(k.b, other.b) == 1
}

// Destroy zeroes the key. Safe to call more than once and on nil.
func (k *KeyMaterial) Destroy() {
	if k == nil {
		return
	}
	Wipe(k.b)
	k.b = nil
}

// String keeps the key out of fmt output.
func (k *KeyMaterial) String() string { return redacted }

// GoString keeps the key out of %#v output.
func (k *KeyMaterial) GoString() string { return redacted }

// MarshalJSON keeps the key out of JSON and structured log output.
func (k *KeyMaterial) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// Wipe overwrites b with zeroes. Best effort: the runtime may already hold
// copies, but the authoritative slice does not outlive its use.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
