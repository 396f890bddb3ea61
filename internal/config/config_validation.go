// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

const maxPasswordLength = 1024

// validate checks the merged configuration. Every failing group is
// reported, joined with [errors.Join].
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.Crypto.validate(),
		cfg.Policy.validate(),
		cfg.Storage.validate(),
		cfg.Adapter.validate(),
		cfg.Workers.validate(),
		cfg.Log.validate(),
	)
}

func (c Crypto) validate() error {
	switch c.KDFAlgorithm {
	case "pbkdf2-sha256":
		if c.PBKDF2Iterations <= 0 {
			return fmt.Errorf("%w: pbkdf2 iterations must be positive", ErrInvalidCryptoConfigs)
		}
	case "argon2id":
		if c.Argon2Time == 0 || c.Argon2MemoryKB == 0 || c.Argon2Threads == 0 {
			return fmt.Errorf("%w: argon2id costs must be positive", ErrInvalidCryptoConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kdf %q", ErrInvalidCryptoConfigs, c.KDFAlgorithm)
	}

	if c.ChunkSize <= 0 || c.ChunkSize%16 != 0 {
		return fmt.Errorf("%w: chunk size must be a positive multiple of 16", ErrInvalidCryptoConfigs)
	}
	return nil
}

func (p Policy) validate() error {
	if p.MinLength < 1 || p.MaxLength < p.MinLength || p.MaxLength > maxPasswordLength {
		return fmt.Errorf("%w: need 1 <= min_length <= max_length <= %d", ErrInvalidPolicyConfigs, maxPasswordLength)
	}
	return nil
}

func (s Storage) validate() error {
	if s.OrphanTTL <= 0 {
		return fmt.Errorf("%w: orphan ttl must be positive", ErrInvalidStorageConfigs)
	}
	return nil
}

func (a Adapter) validate() error {
	switch a.Kind {
	case AdapterNone, "":
		return nil
	case AdapterHTTP:
		if a.HTTPAddress == "" || a.RequestTimeout <= 0 {
			return fmt.Errorf("%w: http adapter needs an address and a request timeout", ErrInvalidAdapterConfigs)
		}
	case AdapterS3:
		if a.S3.Bucket == "" || a.S3.Region == "" {
			return fmt.Errorf("%w: s3 adapter needs a bucket and a region", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidAdapterConfigs, a.Kind)
	}
	return nil
}

func (w Workers) validate() error {
	if w.SweepInterval <= 0 {
		return fmt.Errorf("%w: sweep interval must be positive", ErrInvalidWorkerConfigs)
	}
	return nil
}

func (l Log) validate() error {
	if l.Level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}
