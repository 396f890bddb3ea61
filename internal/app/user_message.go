// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/service"
	"github.com/MKhiriev/go-journal-vault/internal/tui"
	"github.com/MKhiriev/go-journal-vault/internal/validators"
)

// Process exit codes.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitUsage         = 2
	ExitWrongPassword = 3
	ExitCancelled     = 130
)

var policyViolations = []error{
	validators.ErrPasswordTooShort,
	validators.ErrPasswordTooLong,
	validators.ErrPasswordNoLowercase,
	validators.ErrPasswordNoUppercase,
	validators.ErrPasswordNoDigit,
	validators.ErrPasswordNoSpecial,
	validators.ErrPasswordCommon,
}

var configErrors = []error{
	config.ErrInvalidCryptoConfigs,
	config.ErrInvalidPolicyConfigs,
	config.ErrInvalidStorageConfigs,
	config.ErrInvalidAdapterConfigs,
	config.ErrInvalidWorkerConfigs,
	config.ErrInvalidLogConfigs,
	config.ErrUnsupportedConfigFormat,
}

// UserMessage turns an engine error into one line suitable for the terminal.
// It never includes key material, plaintext or raw ciphertext.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case service.IsWrongPassword(err):
		return MsgIncorrectPassword
	case errors.Is(err, context.Canceled), errors.Is(err, tui.ErrUserQuit):
		return MsgCancelled
	case errors.Is(err, service.ErrPasswordRejected):
		return passwordRejectedMessage(err)
	case errors.Is(err, crypto.ErrInvalidInput):
		return MsgInvalidInput
	case errors.Is(err, service.ErrServerManagedEntry):
		return MsgServerManagedEntry
	case errors.Is(err, crypto.ErrMalformedRecord), errors.Is(err, crypto.ErrInvalidIV):
		return MsgMalformedRecord
	case errors.Is(err, crypto.ErrFileNotFound):
		return MsgFileNotFound
	case errors.Is(err, service.ErrMediaStoreDisabled):
		return MsgMediaStoreDisabled
	case errors.Is(err, service.ErrRemoteStore), errors.Is(err, context.DeadlineExceeded):
		return MsgRemoteStore
	case errors.Is(err, crypto.ErrStorage):
		return MsgStorage
	case isConfigError(err):
		return MsgInvalidConfig + ": " + err.Error()
	default:
		return MsgInternalError + ": " + err.Error()
	}
}

// ExitCode maps err to the process exit status. A wrong password has its
// own code so scripts can tell it apart from other failures.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case service.IsWrongPassword(err):
		return ExitWrongPassword
	case errors.Is(err, context.Canceled), errors.Is(err, tui.ErrUserQuit):
		return ExitCancelled
	case errors.Is(err, service.ErrPasswordRejected),
		errors.Is(err, crypto.ErrInvalidInput),
		isConfigError(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

func passwordRejectedMessage(err error) string {
	var reasons []string
	for _, v := range policyViolations {
		if errors.Is(err, v) {
			reasons = append(reasons, v.Error())
		}
	}
	if len(reasons) == 0 {
		return MsgPasswordRejected
	}
	return MsgPasswordRejected + ": " + strings.Join(reasons, "; ")
}

func isConfigError(err error) bool {
	for _, target := range configErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
