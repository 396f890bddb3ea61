// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

func newTestDeriver(t *testing.T) KeyDeriver {
	t.Helper()
	d, err := NewKeyDeriver(testKDFParams)
	require.NoError(t, err)
	return d
}

func TestNewKeyDeriver(t *testing.T) {
	tests := []struct {
		name    string
		params  KDFParams
		algo    string
		wantErr bool
	}{
		{name: "defaults", params: DefaultKDFParams(), algo: AlgorithmPBKDF2},
		{name: "empty algorithm is pbkdf2", params: KDFParams{Iterations: 10}, algo: AlgorithmPBKDF2},
		{name: "argon2id", params: KDFParams{Algorithm: AlgorithmArgon2id, Time: 1, MemoryKB: 1024, Threads: 1}, algo: AlgorithmArgon2id},
		{name: "zero iterations", params: KDFParams{Algorithm: AlgorithmPBKDF2}, wantErr: true},
		{name: "argon2id without memory", params: KDFParams{Algorithm: AlgorithmArgon2id, Time: 1, Threads: 1}, wantErr: true},
		{name: "unknown", params: KDFParams{Algorithm: "scrypt", Iterations: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewKeyDeriver(tt.params)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedKDF)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.algo, d.Algorithm())
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	// two independent derivers stand in for two processes
	k1, err := newTestDeriver(t).Derive("Summer2024!", "user@example.com")
	require.NoError(t, err)
	k2, err := newTestDeriver(t).Derive("Summer2024!", "user@example.com")
	require.NoError(t, err)

	assert.True(t, k1.Equal(k2))
	assert.Len(t, k1.b, KeySize)
}

func TestDerive_DefaultParamsMatchReference(t *testing.T) {
	d, err := NewKeyDeriver(DefaultKDFParams())
	require.NoError(t, err)

	k, err := d.Derive("Summer2024!", "user@example.com")
	require.NoError(t, err)

	salt := sha256.Sum256([]byte("journal-vault/kdf/v1\x00user@example.com"))
	want := pbkdf2.Key([]byte("Summer2024!"), salt[:], 210_000, 32, sha256.New)
	assert.Equal(t, hex.EncodeToString(want), hex.EncodeToString(k.b))
}

func TestDerive_InputsChangeKey(t *testing.T) {
	d := newTestDeriver(t)

	base, err := d.Derive("Summer2024!", "user@example.com")
	require.NoError(t, err)

	otherPassword, err := d.Derive("Summer2024?", "user@example.com")
	require.NoError(t, err)
	otherAccount, err := d.Derive("Summer2024!", "other@example.com")
	require.NoError(t, err)

	assert.False(t, base.Equal(otherPassword))
	assert.False(t, base.Equal(otherAccount))
}

func TestDerive_AccountIDNormalised(t *testing.T) {
	d := newTestDeriver(t)

	k1, err := d.Derive("pw", "user@example.com")
	require.NoError(t, err)
	k2, err := d.Derive("pw", "  User@Example.COM ")
	require.NoError(t, err)

	assert.True(t, k1.Equal(k2))
}

func TestDerive_EmptyInput(t *testing.T) {
	d := newTestDeriver(t)

	_, err := d.Derive("", "user@example.com")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = d.Derive("pw", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = d.Derive("pw", "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDerive_Argon2id(t *testing.T) {
	d, err := NewKeyDeriver(KDFParams{Algorithm: AlgorithmArgon2id, Time: 1, MemoryKB: 8 * 1024, Threads: 2})
	require.NoError(t, err)

	k1, err := d.Derive("Summer2024!", "user@example.com")
	require.NoError(t, err)
	k2, err := d.Derive("Summer2024!", "user@example.com")
	require.NoError(t, err)
	pb, err := newTestDeriver(t).Derive("Summer2024!", "user@example.com")
	require.NoError(t, err)

	assert.True(t, k1.Equal(k2))
	assert.False(t, k1.Equal(pb))
}

func TestAccountSalt_FixedLength(t *testing.T) {
	assert.Len(t, accountSalt("a"), sha256.Size)
	assert.Len(t, accountSalt("a-much-longer-account-identifier@example.com"), sha256.Size)
	assert.NotEqual(t, accountSalt("a"), accountSalt("b"))
}
