// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 transport hashes. The server uses the
// same key to check that an uploaded blob arrived intact. The hash covers
// ciphertext only and is not a substitute for authenticated encryption.
//
// A Hasher keeps a pool of HMAC instances and is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash returns the raw HMAC of data.
func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	defer h.put(mac)

	mac.Write(data)
	return mac.Sum(nil)
}

// HashReader streams r through the HMAC and returns the hex digest along
// with the number of bytes read.
func (h *Hasher) HashReader(r io.Reader) (string, int64, error) {
	mac := h.pool.Get().(hash.Hash)
	defer h.put(mac)

	n, err := io.Copy(mac, r)
	if err != nil {
		return "", n, fmt.Errorf("hash reader: %w", err)
	}
	return hex.EncodeToString(mac.Sum(nil)), n, nil
}

// Verify compares two hex digests in constant time. Case is ignored and a
// digest that is not valid hex never matches.
func (h *Hasher) Verify(digest, want string) bool {
	got, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(want)
	if err != nil {
		return false
	}
	return hmac.Equal(got, expected)
}

func (h *Hasher) put(mac hash.Hash) {
	mac.Reset()
	h.pool.Put(mac)
}
