// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"testing"

	"github.com/stretchr/testify/require"
)

// testKDFParams keeps derivation fast in tests while staying on the real
// algorithm.
var testKDFParams = KDFParams{Algorithm: AlgorithmPBKDF2, Iterations: 1000}

func testKey(t *testing.T, fill byte) *KeyMaterial {
	t.Helper()
	k, err := NewKeyMaterial(bytes.Repeat([]byte{fill}, KeySize))
	require.NoError(t, err)
	return k
}

// padByteUnder returns the final plaintext byte that decrypting ciphertext
// with key would produce. A value outside 1..16 can never pass the padding
// check, which lets wrong-key tests avoid the rare accidental valid pad.
func padByteUnder(t *testing.T, ciphertext, iv []byte, key *KeyMaterial) byte {
	t.Helper()
	block, err := aes.NewCipher(key.b)
	require.NoError(t, err)

	n := len(ciphertext)
	prev := iv
	if n > aes.BlockSize {
		prev = ciphertext[n-2*aes.BlockSize : n-aes.BlockSize]
	}
	out := make([]byte, aes.BlockSize)
	block.Decrypt(out, ciphertext[n-aes.BlockSize:])
	return out[aes.BlockSize-1] ^ prev[aes.BlockSize-1]
}

func invalidPad(b byte) bool {
	return b == 0 || int(b) > aes.BlockSize
}

// encryptUndecryptable encrypts plaintext under right until the result is
// guaranteed to fail padding under wrong.
func encryptUndecryptable(t *testing.T, c SymmetricCipher, plaintext []byte, right, wrong *KeyMaterial) ([]byte, []byte) {
	t.Helper()
	for range 1000 {
		ct, iv, err := c.Encrypt(plaintext, right)
		require.NoError(t, err)
		if invalidPad(padByteUnder(t, ct, iv, wrong)) {
			return ct, iv
		}
	}
	t.Fatal("could not produce a ciphertext with invalid padding under the wrong key")
	return nil, nil
}
