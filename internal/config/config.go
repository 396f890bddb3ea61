// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "JOURNAL_VAULT_"

// Adapter kinds.
const (
	AdapterNone = "none"
	AdapterHTTP = "http"
	AdapterS3   = "s3"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, an optional config file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// Crypto selects the key derivation function and stream chunking.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Policy holds the password rules applied before encryption.
	Policy Policy `envPrefix:"POLICY_"`

	// Storage configures the temp directory for encrypted and decrypted
	// media.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter configures where encrypted media is uploaded to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log configures the client logger.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML config file.
	// Env: JOURNAL_VAULT_CONFIG
	FilePath string `env:"CONFIG"`
}

// Crypto holds the key derivation contract. Changing any KDF value for an
// existing account makes previously written ciphertext unreadable.
type Crypto struct {
	// KDFAlgorithm is "pbkdf2-sha256" or "argon2id".
	// Env: JOURNAL_VAULT_CRYPTO_KDF_ALGORITHM
	KDFAlgorithm string `env:"KDF_ALGORITHM"`

	// PBKDF2Iterations is the PBKDF2-SHA256 iteration count.
	// Env: JOURNAL_VAULT_CRYPTO_PBKDF2_ITERATIONS
	PBKDF2Iterations int `env:"PBKDF2_ITERATIONS"`

	// Argon2Time, Argon2MemoryKB and Argon2Threads are the Argon2id costs.
	Argon2Time     uint32 `env:"ARGON2_TIME"`
	Argon2MemoryKB uint32 `env:"ARGON2_MEMORY_KB"`
	Argon2Threads  uint8  `env:"ARGON2_THREADS"`

	// ChunkSize is the file streaming chunk size in bytes. It must be a
	// positive multiple of 16.
	// Env: JOURNAL_VAULT_CRYPTO_CHUNK_SIZE
	ChunkSize int `env:"CHUNK_SIZE"`
}

// Policy holds the password rules. Rules are on by default; the Allow*
// switches relax them.
type Policy struct {
	// MinLength and MaxLength bound the password length in characters.
	MinLength int `env:"MIN_LENGTH"`
	MaxLength int `env:"MAX_LENGTH"`

	AllowNoLowercase bool `env:"ALLOW_NO_LOWERCASE"`
	AllowNoUppercase bool `env:"ALLOW_NO_UPPERCASE"`
	AllowNoDigit     bool `env:"ALLOW_NO_DIGIT"`
	AllowNoSpecial   bool `env:"ALLOW_NO_SPECIAL"`

	// AllowCommon disables the common password blocklist.
	AllowCommon bool `env:"ALLOW_COMMON"`
}

// Storage configures temp file handling.
type Storage struct {
	// TempDir is where encrypted and decrypted temp files live. Empty
	// selects <os temp dir>/journal-vault.
	// Env: JOURNAL_VAULT_STORAGE_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`

	// OrphanTTL is how old a temp file must be before the sweeper deletes
	// it (e.g. "30m").
	// Env: JOURNAL_VAULT_STORAGE_ORPHAN_TTL
	OrphanTTL time.Duration `env:"ORPHAN_TTL"`
}

// Adapter configures the remote media store.
type Adapter struct {
	// Kind is "none", "http" or "s3".
	// Env: JOURNAL_VAULT_ADAPTER_KIND
	Kind string `env:"KIND"`

	// HTTPAddress is the base URL of the journal backend.
	// Env: JOURNAL_VAULT_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single upload or download request.
	// Env: JOURNAL_VAULT_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HashKey is the HMAC key for the HashSHA256 transport header.
	// Env: JOURNAL_VAULT_ADAPTER_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// S3 holds bucket settings used when Kind is "s3".
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds the S3-compatible bucket settings.
type S3 struct {
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	Prefix          string `env:"PREFIX"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// Workers holds background worker settings.
type Workers struct {
	// SweepInterval is how often stale temp files are swept.
	// Env: JOURNAL_VAULT_WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// Log configures the client logger.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	Level string `env:"LEVEL"`

	// File is the log file path. Empty selects a file next to the binary.
	File string `env:"FILE"`
}

// Load assembles the configuration from defaults, the config file, the
// environment and flags (nil flags are skipped) and validates the result.
func Load(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
