// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MediaRef points to an encrypted media blob held by the remote store.
// Together with the user's password it is everything needed to restore
// the original file.
type MediaRef struct {
	// ID is the object identifier assigned on upload.
	ID string `json:"id"`

	// URL is where the encrypted blob can be fetched from.
	URL string `json:"url"`

	// IV is the lowercase hex initialization vector returned by the
	// encryption step. It travels unchanged through the server.
	IV string `json:"iv"`

	// MimeType is the original content type (image/jpeg, audio/mp4, ...).
	MimeType string `json:"mime_type"`

	// Size is the size of the encrypted blob in bytes.
	Size int64 `json:"size"`
}
