// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording and exit codes shared by the
// journal-vault CLI commands.
//
// All Msg* constants are human-readable strings printed to the terminal to
// describe the outcome of an operation. Keeping them in one place keeps the
// wording consistent across commands.
package app

const (
	// MsgIncorrectPassword is shown when decryption fails. Every decryption
	// failure is reported this way; the user cannot tell a wrong password
	// from corrupted ciphertext, and the operation must not be retried
	// automatically.
	MsgIncorrectPassword = "incorrect password"

	// MsgInvalidInput is shown when the password or account id is empty.
	MsgInvalidInput = "password and account id are required"

	// MsgPasswordRejected prefixes the list of policy violations.
	MsgPasswordRejected = "password does not meet the policy"

	// MsgMalformedRecord is shown when an encrypted record or media reference
	// is damaged or incomplete.
	MsgMalformedRecord = "encrypted data is damaged or incomplete"

	// MsgFileNotFound is shown when a source file or remote media is missing.
	MsgFileNotFound = "file not found"

	// MsgStorage is shown when reading or writing a local file fails.
	MsgStorage = "could not read or write a local file"

	// MsgRemoteStore is shown when the media store cannot be reached or
	// rejects the request.
	MsgRemoteStore = "media store is unavailable"

	// MsgMediaStoreDisabled is shown when a media command runs without an
	// adapter configured.
	MsgMediaStoreDisabled = "no media store configured (set --adapter)"

	// MsgServerManagedEntry is shown for entries that were never encrypted
	// on this device.
	MsgServerManagedEntry = "entry is not end-to-end encrypted"

	// MsgInvalidConfig is shown when configuration fails validation.
	MsgInvalidConfig = "invalid configuration"

	// MsgCancelled is shown when the user interrupts an operation.
	MsgCancelled = "cancelled"

	// MsgInternalError is shown for anything not classified above.
	MsgInternalError = "unexpected error"
)
