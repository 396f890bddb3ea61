// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Supported key derivation algorithms.
const (
	AlgorithmPBKDF2   = "pbkdf2-sha256"
	AlgorithmArgon2id = "argon2id"
)

// saltContext domain-separates the account salt from any other hash of the
// account identifier.
const saltContext = "journal-vault/kdf/v1"

// KDFParams selects the derivation function and its cost. The parameters
// are part of the derivation contract: changing them for an existing
// account yields a different key and makes old ciphertext unreadable.
type KDFParams struct {
	Algorithm string

	// PBKDF2 iteration count.
	Iterations int

	// Argon2id costs.
	Time     uint32
	MemoryKB uint32
	Threads  uint8
}

// DefaultKDFParams returns PBKDF2-SHA256 with the OWASP 2023 iteration
// count and the Argon2id costs recommended for interactive logins
// (1 pass, 64 MiB, 4 lanes), used when Algorithm is switched to argon2id.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Algorithm:  AlgorithmPBKDF2,
		Iterations: 210_000,
		Time:       1,
		MemoryKB:   64 * 1024,
		Threads:    4,
	}
}

// NewKeyDeriver returns the [KeyDeriver] described by p.
func NewKeyDeriver(p KDFParams) (KeyDeriver, error) {
	switch p.Algorithm {
	case AlgorithmPBKDF2, "":
		if p.Iterations <= 0 {
			return nil, fmt.Errorf("%w: pbkdf2 iterations must be positive", ErrUnsupportedKDF)
		}
		return &pbkdf2Deriver{iterations: p.Iterations}, nil
	case AlgorithmArgon2id:
		if p.Time == 0 || p.MemoryKB == 0 || p.Threads == 0 {
			return nil, fmt.Errorf("%w: argon2id costs must be positive", ErrUnsupportedKDF)
		}
		return &argon2idDeriver{time: p.Time, memoryKB: p.MemoryKB, threads: p.Threads}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKDF, p.Algorithm)
	}
}

// NormalizeAccountID trims and lowercases an account identifier so that
// "User@Example.com " and "user@example.com" derive the same key.
func NormalizeAccountID(accountID string) string {
	return strings.ToLower(strings.TrimSpace(accountID))
}

// accountSalt maps a normalised account identifier to a fixed 32-byte salt.
func accountSalt(normalized string) []byte {
	h := sha256.New()
	h.Write([]byte(saltContext))
	h.Write([]byte{0})
	h.Write([]byte(normalized))
	return h.Sum(nil)
}

// prepare validates the inputs and returns the password bytes and salt.
// The caller wipes the password bytes.
func prepare(password, accountID string) ([]byte, []byte, error) {
	if password == "" {
		return nil, nil, fmt.Errorf("%w: password is empty", ErrInvalidInput)
	}
	normalized := NormalizeAccountID(accountID)
	if normalized == "" {
		return nil, nil, fmt.Errorf("%w: account id is empty", ErrInvalidInput)
	}
	return []byte(password), accountSalt(normalized), nil
}

type pbkdf2Deriver struct {
	iterations int
}

// Derive implements [KeyDeriver] with PBKDF2-HMAC-SHA256.
func (d *pbkdf2Deriver) Derive(password, accountID string) (*KeyMaterial, error) {
	pw, salt, err := prepare(password, accountID)
	if err != nil {
		return nil, err
	}
	defer Wipe(pw)

	return &KeyMaterial{b: pbkdf2.Key(pw, salt, d.iterations, KeySize, sha256.New)}, nil
}

func (d *pbkdf2Deriver) Algorithm() string { return AlgorithmPBKDF2 }

type argon2idDeriver struct {
	time     uint32
	memoryKB uint32
	threads  uint8
}

// Derive implements [KeyDeriver] with Argon2id.
func (d *argon2idDeriver) Derive(password, accountID string) (*KeyMaterial, error) {
	pw, salt, err := prepare(password, accountID)
	if err != nil {
		return nil, err
	}
	defer Wipe(pw)

	return &KeyMaterial{b: argon2.IDKey(pw, salt, d.time, d.memoryKB, d.threads, KeySize)}, nil
}

func (d *argon2idDeriver) Algorithm() string { return AlgorithmArgon2id }
