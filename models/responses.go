// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MediaUploadResponse is returned by the media endpoint after an encrypted
// blob has been stored.
type MediaUploadResponse struct {
	// ID is the identifier the server stored the blob under. It echoes the
	// client-generated ID unless the server assigns its own.
	ID string `json:"id"`

	// URL is the download location of the blob.
	URL string `json:"url"`
}
