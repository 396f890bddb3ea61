// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/gabriel-vasile/mimetype"
)

// EncryptedFile is a temp file holding ciphertext ready for upload. The
// owner must call Release once the upload is done or abandoned.
type EncryptedFile struct {
	Path string
	// IV is the lowercase hex IV that must travel with the ciphertext.
	IV   string
	Size int64

	release func() error
	once    sync.Once
	err     error
}

// Release deletes the temp file. Only the first call does any work; later
// calls return the first result.
func (f *EncryptedFile) Release() error {
	if f == nil || f.release == nil {
		return nil
	}
	f.once.Do(func() { f.err = f.release() })
	return f.err
}

// DecryptedFile is a temp file holding plaintext media ready to display.
// It must be released as soon as it is no longer shown.
type DecryptedFile struct {
	Path     string
	MimeType string
	Size     int64

	release func() error
	once    sync.Once
	err     error
}

// Release deletes the temp file. Only the first call does any work; later
// calls return the first result.
func (f *DecryptedFile) Release() error {
	if f == nil || f.release == nil {
		return nil
	}
	f.once.Do(func() { f.err = f.release() })
	return f.err
}

// fileCodec implements [FileCodec]. It streams files through the cipher so
// memory use does not grow with file size.
type fileCodec struct {
	cipher  SymmetricCipher
	storage store.TempFileStorage
	logger  *logger.Logger
}

// NewFileCodec returns a [FileCodec] writing its results into storage.
func NewFileCodec(cipher SymmetricCipher, storage store.TempFileStorage, log *logger.Logger) FileCodec {
	return &fileCodec{cipher: cipher, storage: storage, logger: log}
}

// EncryptFile implements [FileCodec].
func (c *fileCodec) EncryptFile(ctx context.Context, sourcePath string, key *KeyMaterial) (*EncryptedFile, error) {
	start := time.Now()

	src, err := openSource(sourcePath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tmp, err := c.createTemp(ctx, store.PurposeEncrypted, "")
	if err != nil {
		return nil, err
	}

	dst := &storageWriter{w: tmp}
	iv, err := c.cipher.EncryptStream(ctx, dst, &storageReader{r: src}, key)
	if err == nil {
		err = closeTemp(tmp)
	}
	if err != nil {
		c.discard(tmp)
		return nil, fmt.Errorf("encrypt file: %w", err)
	}

	c.logger.Debug().
		Str("op", "encrypt_file").
		Int64("size", dst.n).
		Dur("took", time.Since(start)).
		Msg("file encrypted")

	path := tmp.Name()
	return &EncryptedFile{
		Path:    path,
		IV:      hex.EncodeToString(iv),
		Size:    dst.n,
		release: func() error { return c.storage.Remove(path) },
	}, nil
}

// DecryptFile implements [FileCodec].
func (c *fileCodec) DecryptFile(ctx context.Context, sourcePath, iv string, key *KeyMaterial, mimeType string) (*DecryptedFile, error) {
	start := time.Now()

	rawIV, err := DecodeIV(iv)
	if err != nil {
		return nil, err
	}

	src, err := openSource(sourcePath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType = baseMimeType(mimeType)
	tmp, err := c.createTemp(ctx, store.PurposePlain, extensionFor(mimeType))
	if err != nil {
		return nil, err
	}

	dst := &storageWriter{w: tmp}
	err = c.cipher.DecryptStream(ctx, dst, &storageReader{r: src}, key, rawIV)
	if err == nil {
		err = closeTemp(tmp)
	}
	if err != nil {
		c.discard(tmp)
		return nil, fmt.Errorf("decrypt file: %w", err)
	}

	path := tmp.Name()
	if mimeType == "" {
		mimeType, path, err = c.detectType(path)
		if err != nil {
			_ = c.storage.Remove(path)
			return nil, err
		}
	}

	c.logger.Debug().
		Str("op", "decrypt_file").
		Str("mime", mimeType).
		Int64("size", dst.n).
		Dur("took", time.Since(start)).
		Msg("file decrypted")

	return &DecryptedFile{
		Path:     path,
		MimeType: mimeType,
		Size:     dst.n,
		release:  func() error { return c.storage.Remove(path) },
	}, nil
}

// detectType sniffs the plaintext and renames the file to carry the matching
// extension.
func (c *fileCodec) detectType(path string) (string, string, error) {
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return "", path, fmt.Errorf("%w: detect mime type: %w", ErrStorage, err)
	}

	newPath, err := c.storage.AddExtension(path, detected.Extension())
	if err != nil {
		return "", path, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return baseMimeType(detected.String()), newPath, nil
}

func (c *fileCodec) createTemp(ctx context.Context, purpose, ext string) (*os.File, error) {
	tmp, err := c.storage.Create(ctx, purpose, ext)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return tmp, nil
}

// discard closes and deletes a temp file after a failed operation.
func (c *fileCodec) discard(tmp *os.File) {
	_ = tmp.Close()
	if err := c.storage.Remove(tmp.Name()); err != nil {
		c.logger.Error().Err(err).Msg("failed to remove partial temp file")
	}
}

func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: open source: %w", ErrStorage, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: stat source: %w", ErrStorage, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrStorage, path)
	}
	return f, nil
}

func closeTemp(f *os.File) error {
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: sync temp file: %w", ErrStorage, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", ErrStorage, err)
	}
	return nil
}

// baseMimeType drops parameters such as "; charset=utf-8".
func baseMimeType(m string) string {
	m, _, _ = strings.Cut(m, ";")
	return strings.ToLower(strings.TrimSpace(m))
}

// extensionFor returns the canonical file extension for a MIME type, or ""
// when the type is empty or unknown.
func extensionFor(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	if m := mimetype.Lookup(mimeType); m != nil {
		return m.Extension()
	}
	return ""
}

// storageReader marks source read failures as storage errors.
type storageReader struct {
	r io.Reader
}

func (s *storageReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return n, err
}

// storageWriter marks temp file write failures as storage errors and counts
// the bytes written.
type storageWriter struct {
	w io.Writer
	n int64
}

func (s *storageWriter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.n += int64(n)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return n, err
}
