// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store owns the short-lived files produced by the encryption
// engine: ciphertext waiting for upload and decrypted media waiting to be
// displayed. Nothing here is durable; every file is expected to be released
// by its owner or swept once it is older than the configured TTL.
package store

import (
	"context"
	"os"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Temp file purposes, used as name prefixes so a sweep report and a
// directory listing tell encrypted and decrypted files apart.
const (
	PurposeEncrypted = "enc"
	PurposePlain     = "plain"
)

// TempFileStorage creates and removes files in a private directory.
type TempFileStorage interface {
	// Create opens a new empty file named <purpose>-<uuid><ext> for writing.
	// The caller owns the returned file and must close it.
	Create(ctx context.Context, purpose, ext string) (*os.File, error)

	// AddExtension renames path so that it ends in ext and returns the new
	// path. An empty ext leaves the file untouched.
	AddExtension(path, ext string) (string, error)

	// Remove deletes path. A file that is already gone is not an error.
	Remove(path string) error

	// Sweep deletes every file older than olderThan and returns how many
	// were removed.
	Sweep(ctx context.Context, olderThan time.Duration) (int, error)

	// Dir reports the directory the storage writes to.
	Dir() string
}
