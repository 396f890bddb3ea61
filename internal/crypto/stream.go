// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
)

// EncryptStream implements [SymmetricCipher]. Full chunks are encrypted as
// they arrive; the CBC chain carries over between chunks and the final
// (possibly empty) chunk is padded, so the output matches Encrypt.
func (c *aesCBC) EncryptStream(ctx context.Context, dst io.Writer, src io.Reader, key *KeyMaterial) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	iv, err := c.newIV()
	if err != nil {
		return nil, err
	}

	mode := cipher.NewCBCEncrypter(block, iv)
	buf := make([]byte, c.chunkSize)
	defer Wipe(buf)

	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		n, rerr := io.ReadFull(src, buf)
		switch {
		case rerr == nil:
			mode.CryptBlocks(buf, buf)
			if _, err = dst.Write(buf); err != nil {
				return nil, fmt.Errorf("write chunk: %w", err)
			}
		case errors.Is(rerr, io.EOF), errors.Is(rerr, io.ErrUnexpectedEOF):
			last := pkcs7Pad(buf[:n], aes.BlockSize)
			mode.CryptBlocks(last, last)
			if _, err = dst.Write(last); err != nil {
				return nil, fmt.Errorf("write final chunk: %w", err)
			}
			return iv, nil
		default:
			return nil, fmt.Errorf("read chunk: %w", rerr)
		}
	}
}

// DecryptStream implements [SymmetricCipher]. The last decrypted block is
// held back until the input ends so the padding can be checked and removed.
func (c *aesCBC) DecryptStream(ctx context.Context, dst io.Writer, src io.Reader, key *KeyMaterial, iv []byte) error {
	block, err := newBlock(key)
	if err != nil {
		return err
	}
	if err = checkIV(iv); err != nil {
		return err
	}

	mode := cipher.NewCBCDecrypter(block, iv)
	buf := make([]byte, c.chunkSize)
	defer Wipe(buf)

	var held [aes.BlockSize]byte
	defer Wipe(held[:])
	hasHeld := false

	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		n, rerr := io.ReadFull(src, buf)
		if rerr != nil && !errors.Is(rerr, io.EOF) && !errors.Is(rerr, io.ErrUnexpectedEOF) {
			return fmt.Errorf("read chunk: %w", rerr)
		}

		if n > 0 {
			if n%aes.BlockSize != 0 {
				return fmt.Errorf("%w: ciphertext is not block aligned", ErrDecryptionFailed)
			}
			if hasHeld {
				if _, err = dst.Write(held[:]); err != nil {
					return fmt.Errorf("write chunk: %w", err)
				}
			}
			mode.CryptBlocks(buf[:n], buf[:n])
			if _, err = dst.Write(buf[:n-aes.BlockSize]); err != nil {
				return fmt.Errorf("write chunk: %w", err)
			}
			copy(held[:], buf[n-aes.BlockSize:n])
			hasHeld = true
		}

		if rerr != nil {
			break
		}
	}

	if !hasHeld {
		return fmt.Errorf("%w: ciphertext is empty", ErrDecryptionFailed)
	}

	tail, err := pkcs7Unpad(held[:], aes.BlockSize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	if _, err = dst.Write(tail); err != nil {
		return fmt.Errorf("write final chunk: %w", err)
	}
	return nil
}
