// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials carries what the caller collects for a single encrypt or
// decrypt operation. The engine never keeps a copy once the operation
// returns.
type Credentials struct {
	// Password is the user's journal password exactly as typed.
	Password string `json:"-" validate:"required"`

	// AccountID is the stable identifier of the authenticated account
	// (usually the e-mail address). It is normalised before key derivation.
	AccountID string `json:"account_id" validate:"required,max=320"`
}

// String hides the password so credentials can never leak through
// formatted logging.
func (c Credentials) String() string {
	return "Credentials{AccountID: " + c.AccountID + ", Password: [redacted]}"
}
