// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidCryptoConfigs indicates an unknown KDF, non-positive KDF
	// costs or a chunk size that is not a positive multiple of 16.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidPolicyConfigs indicates inconsistent password length bounds.
	ErrInvalidPolicyConfigs = errors.New("invalid password policy configuration")
	// ErrInvalidStorageConfigs indicates a non-positive orphan TTL.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates an unknown adapter kind or missing
	// address, timeout or bucket settings for the selected kind.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive sweep interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrUnsupportedConfigFormat is returned for a config file that is
	// neither JSON nor YAML.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
