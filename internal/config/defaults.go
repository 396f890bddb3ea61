// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default returns the built-in configuration.
func Default() *StructuredConfig {
	return &StructuredConfig{
		Crypto: Crypto{
			KDFAlgorithm:     "pbkdf2-sha256",
			PBKDF2Iterations: 210_000,
			Argon2Time:       1,
			Argon2MemoryKB:   64 * 1024,
			Argon2Threads:    4,
			ChunkSize:        64 * 1024,
		},
		Policy: Policy{
			MinLength: 8,
			MaxLength: 128,
		},
		Storage: Storage{
			OrphanTTL: 30 * time.Minute,
		},
		Adapter: Adapter{
			Kind:           AdapterNone,
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			SweepInterval: 5 * time.Minute,
		},
		Log: Log{
			Level: "info",
		},
	}
}
