// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of the journal-vault CLI.
//
// It wires temp file storage, the configured media store, the encryption
// services and the background temp file sweeper into a single process
// lifecycle.
package client
