// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when the user leaves a prompt without submitting.
	ErrUserQuit = errors.New("user quit")

	// ErrClipboardUnsupported is returned when no clipboard utility is available.
	ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
)
