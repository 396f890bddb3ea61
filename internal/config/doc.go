// Package config provides configuration loading, merging, and validation
// for journal-vault.
//
// Configuration is assembled from several sources. Later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. Config file (JSON or YAML, chosen by extension)
//  3. Environment variables prefixed with JOURNAL_VAULT_
//  4. Command-line flags
//
// The main entry point is [Load]. The password is never part of the
// configuration; callers collect it per operation.
package config
