// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedRecord is the unit the engine hands to the network collaborator
// for every encrypted text field. Both fields are mandatory: an IV without
// its ciphertext (or the reverse) is rejected by the decrypt path.
type EncryptedRecord struct {
	// Ciphertext is the AES-256-CBC output encoded with standard base64.
	Ciphertext string `json:"ciphertext"`

	// IV is the 16-byte initialization vector encoded as lowercase hex
	// (always 32 characters).
	IV string `json:"iv"`
}

// IsZero reports whether neither field is set.
func (r EncryptedRecord) IsZero() bool {
	return r.Ciphertext == "" && r.IV == ""
}
