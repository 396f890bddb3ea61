// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
)

const (
	dirMode  = 0o700
	fileMode = 0o600

	// DefaultDirName is the directory created under os.TempDir when no
	// directory is configured.
	DefaultDirName = "journal-vault"
)

// tempFileStorage is the default implementation of [TempFileStorage]. Files
// are created with O_EXCL and mode 0600 inside a 0700 directory so other
// local users cannot read decrypted media.
type tempFileStorage struct {
	dir    string
	names  *utils.UUIDGenerator
	logger *logger.Logger
}

// NewTempFileStorage creates dir (or os.TempDir()/journal-vault when dir is
// empty) and returns a [TempFileStorage] rooted there.
func NewTempFileStorage(dir string, log *logger.Logger) (TempFileStorage, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), DefaultDirName)
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingTempDir, err)
	}
	if err = os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingTempDir, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingTempDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrCreatingTempDir, dir)
	}

	return &tempFileStorage{
		dir:    dir,
		names:  utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

func (s *tempFileStorage) Dir() string {
	return s.dir
}

func (s *tempFileStorage) Create(ctx context.Context, purpose, ext string) (*os.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := purpose + "-" + s.names.Generate() + normalizeExt(ext)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingTempFile, err)
	}
	return f, nil
}

func (s *tempFileStorage) AddExtension(path, ext string) (string, error) {
	ext = normalizeExt(ext)
	if ext == "" || strings.HasSuffix(path, ext) {
		return path, nil
	}
	if err := s.checkInside(path); err != nil {
		return "", err
	}

	newPath := path + ext
	if err := os.Rename(path, newPath); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenamingTempFile, err)
	}
	return newPath, nil
}

func (s *tempFileStorage) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := s.checkInside(path); err != nil {
		return err
	}

	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrRemovingTempFile, err)
	}
	return nil
}

func (s *tempFileStorage) Sweep(ctx context.Context, olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read temp directory: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	var errs []error

	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			// removed concurrently
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if rmErr := s.Remove(filepath.Join(s.dir, entry.Name())); rmErr != nil {
			errs = append(errs, rmErr)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info().
			Int("removed", removed).
			Dur("older_than", olderThan).
			Msg("swept stale temp files")
	}

	return removed, errors.Join(errs...)
}

// checkInside rejects paths that are not direct children of the storage
// directory.
func (s *tempFileStorage) checkInside(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil || filepath.Dir(abs) != s.dir {
		return fmt.Errorf("%w: %s", ErrOutsideTempDir, path)
	}
	return nil
}

func normalizeExt(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
