// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PrivacyLevel tells the storage layer how a journal entry was protected.
// The server persists it next to the entry so the client knows whether the
// fields must go through the encryption engine on read.
type PrivacyLevel string

const (
	// ZeroKnowledge entries are encrypted on the device with a key derived
	// from the user's password. The server only ever sees ciphertext.
	ZeroKnowledge PrivacyLevel = "zero_knowledge"

	// ServerManaged entries are stored as-is and protected by the server.
	// The encryption engine does not touch them.
	ServerManaged PrivacyLevel = "server_managed"
)

// IsValid reports whether p is one of the known privacy levels.
func (p PrivacyLevel) IsValid() bool {
	return p == ZeroKnowledge || p == ServerManaged
}
