// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] as it appears in a config file.
// Durations are written as strings such as "30s".
type fileConfig struct {
	Crypto struct {
		KDFAlgorithm     string `json:"kdf_algorithm" yaml:"kdf_algorithm"`
		PBKDF2Iterations int    `json:"pbkdf2_iterations" yaml:"pbkdf2_iterations"`
		Argon2Time       uint32 `json:"argon2_time" yaml:"argon2_time"`
		Argon2MemoryKB   uint32 `json:"argon2_memory_kb" yaml:"argon2_memory_kb"`
		Argon2Threads    uint8  `json:"argon2_threads" yaml:"argon2_threads"`
		ChunkSize        int    `json:"chunk_size" yaml:"chunk_size"`
	} `json:"crypto" yaml:"crypto"`

	Policy struct {
		MinLength        int  `json:"min_length" yaml:"min_length"`
		MaxLength        int  `json:"max_length" yaml:"max_length"`
		AllowNoLowercase bool `json:"allow_no_lowercase" yaml:"allow_no_lowercase"`
		AllowNoUppercase bool `json:"allow_no_uppercase" yaml:"allow_no_uppercase"`
		AllowNoDigit     bool `json:"allow_no_digit" yaml:"allow_no_digit"`
		AllowNoSpecial   bool `json:"allow_no_special" yaml:"allow_no_special"`
		AllowCommon      bool `json:"allow_common" yaml:"allow_common"`
	} `json:"policy" yaml:"policy"`

	Storage struct {
		TempDir   string   `json:"temp_dir" yaml:"temp_dir"`
		OrphanTTL Duration `json:"orphan_ttl" yaml:"orphan_ttl"`
	} `json:"storage" yaml:"storage"`

	Adapter struct {
		Kind           string   `json:"kind" yaml:"kind"`
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		HashKey        string   `json:"hash_key" yaml:"hash_key"`
		S3             struct {
			Bucket          string `json:"bucket" yaml:"bucket"`
			Region          string `json:"region" yaml:"region"`
			Endpoint        string `json:"endpoint" yaml:"endpoint"`
			Prefix          string `json:"prefix" yaml:"prefix"`
			AccessKeyID     string `json:"access_key_id" yaml:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key" yaml:"secret_access_key"`
		} `json:"s3" yaml:"s3"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval" yaml:"sweep_interval"`
	} `json:"workers" yaml:"workers"`

	Log struct {
		Level string `json:"level" yaml:"level"`
		File  string `json:"file" yaml:"file"`
	} `json:"log" yaml:"log"`
}

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) config file.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return fc.toConfig(), nil
}

func (fc *fileConfig) toConfig() *StructuredConfig {
	return &StructuredConfig{
		Crypto: Crypto{
			KDFAlgorithm:     fc.Crypto.KDFAlgorithm,
			PBKDF2Iterations: fc.Crypto.PBKDF2Iterations,
			Argon2Time:       fc.Crypto.Argon2Time,
			Argon2MemoryKB:   fc.Crypto.Argon2MemoryKB,
			Argon2Threads:    fc.Crypto.Argon2Threads,
			ChunkSize:        fc.Crypto.ChunkSize,
		},
		Policy: Policy{
			MinLength:        fc.Policy.MinLength,
			MaxLength:        fc.Policy.MaxLength,
			AllowNoLowercase: fc.Policy.AllowNoLowercase,
			AllowNoUppercase: fc.Policy.AllowNoUppercase,
			AllowNoDigit:     fc.Policy.AllowNoDigit,
			AllowNoSpecial:   fc.Policy.AllowNoSpecial,
			AllowCommon:      fc.Policy.AllowCommon,
		},
		Storage: Storage{
			TempDir:   fc.Storage.TempDir,
			OrphanTTL: time.Duration(fc.Storage.OrphanTTL),
		},
		Adapter: Adapter{
			Kind:           fc.Adapter.Kind,
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			HashKey:        fc.Adapter.HashKey,
			S3: S3{
				Bucket:          fc.Adapter.S3.Bucket,
				Region:          fc.Adapter.S3.Region,
				Endpoint:        fc.Adapter.S3.Endpoint,
				Prefix:          fc.Adapter.S3.Prefix,
				AccessKeyID:     fc.Adapter.S3.AccessKeyID,
				SecretAccessKey: fc.Adapter.S3.SecretAccessKey,
			},
		},
		Workers: Workers{
			SweepInterval: time.Duration(fc.Workers.SweepInterval),
		},
		Log: Log{
			Level: fc.Log.Level,
			File:  fc.Log.File,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Bare numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
