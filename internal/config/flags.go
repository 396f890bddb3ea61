// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the configuration values that can be set on the command line.
// Zero values mean "not set" and leave lower-precedence sources in place.
type Flags struct {
	ConfigPath     string
	KDFAlgorithm   string
	TempDir        string
	AdapterKind    string
	HTTPAddress    string
	RequestTimeout time.Duration
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	LogLevel       string
	LogFile        string
}

// RegisterFlags defines the configuration flags on fs and returns the
// struct they are parsed into.
//
// Flags:
//
//	-c/--config       JSON or YAML config file path
//	--kdf             key derivation algorithm (pbkdf2-sha256, argon2id)
//	--temp-dir        directory for temporary media files
//	--adapter         media store kind (none, http, s3)
//	--address         journal backend base URL
//	--request-timeout media request timeout (e.g. 30s)
//	--s3-bucket, --s3-region, --s3-endpoint
//	--log-level       zerolog level
//	--log-file        log file path
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.ConfigPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&f.KDFAlgorithm, "kdf", "", "Key derivation algorithm (pbkdf2-sha256, argon2id)")
	fs.StringVar(&f.TempDir, "temp-dir", "", "Directory for temporary media files")
	fs.StringVar(&f.AdapterKind, "adapter", "", "Media store kind (none, http, s3)")
	fs.StringVar(&f.HTTPAddress, "address", "", "Journal backend base URL")
	fs.DurationVar(&f.RequestTimeout, "request-timeout", 0, "Media request timeout (e.g. 30s)")
	fs.StringVar(&f.S3Bucket, "s3-bucket", "", "S3 bucket for encrypted media")
	fs.StringVar(&f.S3Region, "s3-region", "", "S3 region")
	fs.StringVar(&f.S3Endpoint, "s3-endpoint", "", "S3-compatible endpoint URL")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")

	return f
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		Crypto:  Crypto{KDFAlgorithm: f.KDFAlgorithm},
		Storage: Storage{TempDir: f.TempDir},
		Adapter: Adapter{
			Kind:           f.AdapterKind,
			HTTPAddress:    f.HTTPAddress,
			RequestTimeout: f.RequestTimeout,
			S3: S3{
				Bucket:   f.S3Bucket,
				Region:   f.S3Region,
				Endpoint: f.S3Endpoint,
			},
		},
		Log:      Log{Level: f.LogLevel, File: f.LogFile},
		FilePath: f.ConfigPath,
	}
}
