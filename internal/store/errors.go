// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by temp file storage. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCreatingTempDir is returned when the private temp directory cannot
	// be created or is not a directory.
	ErrCreatingTempDir = errors.New("failed to create temp directory")

	// ErrCreatingTempFile is returned when a new temp file cannot be opened.
	ErrCreatingTempFile = errors.New("failed to create temp file")

	// ErrRemovingTempFile is returned when deleting a temp file fails for a
	// reason other than the file already being gone.
	ErrRemovingTempFile = errors.New("failed to remove temp file")

	// ErrRenamingTempFile is returned when a temp file cannot be renamed.
	ErrRenamingTempFile = errors.New("failed to rename temp file")

	// ErrOutsideTempDir is returned when a path handed to the storage does
	// not live directly inside its directory. Storage never touches files it
	// did not create.
	ErrOutsideTempDir = errors.New("path is outside of temp directory")
)
