// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the encryption engine.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or
//     structures, with optional field-level scoping.
//   - PasswordValidator: the product password policy plus struct-tag
//     validation of credentials.
//   - EntryValidator: shape checks for journal entries before their fields
//     reach the decrypt path.
//
// Validation errors are sentinel values joined with [errors.Join], so a UI
// can list every rule that failed and match each one with [errors.Is].
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
