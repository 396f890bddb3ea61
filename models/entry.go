// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Entry is a journal entry as it is sent to and received from the server.
// For zero-knowledge entries Title and Body hold ciphertext only.
type Entry struct {
	// ClientSideID is generated on the device when the entry is created.
	ClientSideID string `json:"client_side_id"`

	// PrivacyLevel selects whether Title and Body are encrypted.
	PrivacyLevel PrivacyLevel `json:"privacy_level"`

	// Title is the encrypted entry title.
	Title EncryptedRecord `json:"title"`

	// Body is the encrypted entry text.
	Body EncryptedRecord `json:"body"`

	// Media lists encrypted attachments (photos, voice notes, video).
	Media []MediaRef `json:"media,omitempty"`

	// CreatedAt is set by the client when the entry is written.
	CreatedAt time.Time `json:"created_at"`
}

// PlainEntry is the decrypted view of [Entry] handed to the UI layer.
type PlainEntry struct {
	ClientSideID string
	Title        string
	Body         string
	Media        []MediaRef
	CreatedAt    time.Time
}
