// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Password policy violations.
var (
	ErrPasswordEmpty       = errors.New("password is required")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrPasswordTooLong     = errors.New("password is too long")
	ErrPasswordNoLowercase = errors.New("password needs a lowercase letter")
	ErrPasswordNoUppercase = errors.New("password needs an uppercase letter")
	ErrPasswordNoDigit     = errors.New("password needs a digit")
	ErrPasswordNoSpecial   = errors.New("password needs a special character")
	ErrPasswordCommon      = errors.New("password is too common")
)

// Credentials and entry shape violations.
var (
	ErrInvalidAccountID    = errors.New("invalid account id")
	ErrInvalidClientSideID = errors.New("invalid client side id")
	ErrInvalidPrivacyLevel = errors.New("invalid privacy level")
	ErrEmptyEncryptedField = errors.New("encrypted field is incomplete")
	ErrInvalidMediaRef     = errors.New("invalid media reference")
)
