// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across journal-vault: time
// ordered identifiers, keyed transport hashes and the HTTP client wrapper.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for temp files and media objects.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, so names sort by creation time. It falls
// back to a random v4 when the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
