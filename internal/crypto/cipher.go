// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// DefaultChunkSize is the stream chunk size used when none is configured.
const DefaultChunkSize = 64 * 1024

// Option configures the cipher returned by [NewSymmetricCipher].
type Option func(*aesCBC)

// WithChunkSize sets the stream chunk size. It is rounded down to a whole
// number of AES blocks; values below one block select one block.
func WithChunkSize(n int) Option {
	return func(c *aesCBC) {
		n -= n % aes.BlockSize
		if n < aes.BlockSize {
			n = aes.BlockSize
		}
		c.chunkSize = n
	}
}

// WithRandom replaces the IV source. Only tests should use it: IVs must
// come from a cryptographically secure generator.
func WithRandom(r io.Reader) Option {
	return func(c *aesCBC) {
		c.random = r
	}
}

// aesCBC implements [SymmetricCipher] with AES-256-CBC and PKCS#7 padding.
// It holds no per-operation state and is safe for concurrent use.
type aesCBC struct {
	random    io.Reader
	chunkSize int
}

// NewSymmetricCipher returns the AES-256-CBC [SymmetricCipher].
func NewSymmetricCipher(opts ...Option) SymmetricCipher {
	c := &aesCBC{random: rand.Reader, chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt implements [SymmetricCipher].
func (c *aesCBC) Encrypt(plaintext []byte, key *KeyMaterial) ([]byte, []byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, nil, err
	}

	iv, err := c.newIV()
	if err != nil {
		return nil, nil, err
	}

	return sealCBC(block, iv, plaintext), iv, nil
}

// Decrypt implements [SymmetricCipher].
func (c *aesCBC) Decrypt(ciphertext []byte, key *KeyMaterial, iv []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	if err = checkIV(iv); err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d",
			ErrDecryptionFailed, len(ciphertext), aes.BlockSize)
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)

	plaintext, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		Wipe(out)
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

// sealCBC pads plaintext and encrypts it in place of a fresh buffer.
func sealCBC(block cipher.Block, iv, plaintext []byte) []byte {
	buf := pkcs7Pad(plaintext, aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(buf, buf)
	return buf
}

func (c *aesCBC) newIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}
	return iv, nil
}

func newBlock(key *KeyMaterial) (cipher.Block, error) {
	raw, err := key.bytes()
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return block, nil
}

func checkIV(iv []byte) error {
	if len(iv) != IVSize {
		return fmt.Errorf("%w: iv must be %d bytes, got %d", ErrInvalidIV, IVSize, len(iv))
	}
	return nil
}
