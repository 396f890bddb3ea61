package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-journal-vault/internal/adapter"
	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/mock"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/MKhiriev/go-journal-vault/internal/validators"
	"github.com/MKhiriev/go-journal-vault/models"
)

var testCreds = models.Credentials{Password: "Summer2024!", AccountID: "user@example.com"}

// testConfig keeps key derivation fast while using the real algorithm.
func testConfig() *config.StructuredConfig {
	cfg := config.Default()
	cfg.Crypto.PBKDF2Iterations = 1000
	cfg.Crypto.ChunkSize = 64
	return cfg
}

func newTestStorage(t *testing.T) store.TempFileStorage {
	t.Helper()
	s, err := store.NewTempFileStorage(filepath.Join(t.TempDir(), "tmp"), logger.Nop())
	require.NoError(t, err)
	return s
}

func newTestServices(t *testing.T, mediaStore adapter.MediaStore) (*ClientServices, store.TempFileStorage) {
	t.Helper()
	storage := newTestStorage(t)

	svcs, err := NewClientServices(testConfig(), storage, mediaStore, logger.Nop())
	require.NoError(t, err)
	return svcs, storage
}

func TestNewClientServices_UnsupportedKDF(t *testing.T) {
	cfg := testConfig()
	cfg.Crypto.KDFAlgorithm = "scrypt"

	_, err := NewClientServices(cfg, newTestStorage(t), nil, logger.Nop())
	assert.ErrorIs(t, err, crypto.ErrUnsupportedKDF)
}

func TestPasswordPolicy_FromConfig(t *testing.T) {
	p := PasswordPolicy(config.Policy{MinLength: 10, MaxLength: 64, AllowNoSpecial: true, AllowCommon: true})

	assert.Equal(t, 10, p.MinLength)
	assert.Equal(t, 64, p.MaxLength)
	assert.True(t, p.RequireLowercase)
	assert.True(t, p.RequireUppercase)
	assert.True(t, p.RequireDigit)
	assert.False(t, p.RequireSpecial)
	assert.False(t, p.RejectCommon)

	assert.Equal(t, validators.DefaultPasswordPolicy(), PasswordPolicy(config.Default().Policy))
}

func TestJournalCryptoService_Scenario(t *testing.T) {
	svcs, _ := newTestServices(t, nil)
	ctx := context.Background()
	const text = "Today was hard but I got through it."

	record, err := svcs.CryptoService.EncryptText(ctx, testCreds, text)
	require.NoError(t, err)
	assert.Len(t, record.IV, 32)
	assert.NotContains(t, record.Ciphertext, "Today")

	got, err := svcs.CryptoService.DecryptText(ctx, testCreds, record)
	require.NoError(t, err)
	assert.Equal(t, text, got)

	// account ids are normalised before derivation
	got, err = svcs.CryptoService.DecryptText(ctx, models.Credentials{
		Password:  testCreds.Password,
		AccountID: "  User@Example.COM ",
	}, record)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestJournalCryptoService_TextRoundTrip(t *testing.T) {
	svcs, _ := newTestServices(t, nil)
	ctx := context.Background()

	for _, text := range []string{"", "a", "😀 ünïcødé Привет", string(bytes.Repeat([]byte("long "), 2000))} {
		record, err := svcs.CryptoService.EncryptText(ctx, testCreds, text)
		require.NoError(t, err)

		got, err := svcs.CryptoService.DecryptText(ctx, testCreds, record)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}
}

func TestJournalCryptoService_WrongPassword(t *testing.T) {
	svcs, _ := newTestServices(t, nil)
	ctx := context.Background()
	wrong := models.Credentials{Password: "Winter2024!", AccountID: testCreds.AccountID}

	// the wrong key may decrypt a block to valid padding and bytes that are
	// still valid UTF-8; across several records at least one must fail and
	// none may return the original text
	failures := 0
	for range 20 {
		record, err := svcs.CryptoService.EncryptText(ctx, testCreds, "private thoughts")
		require.NoError(t, err)

		got, err := svcs.CryptoService.DecryptText(ctx, wrong, record)
		if err != nil {
			assert.True(t, IsWrongPassword(err))
			failures++
			continue
		}
		assert.NotEqual(t, "private thoughts", got)
	}
	assert.Positive(t, failures)
}

func TestJournalCryptoService_PolicyOnEncryptOnly(t *testing.T) {
	svcs, _ := newTestServices(t, nil)
	ctx := context.Background()
	weak := models.Credentials{Password: "Password1!", AccountID: "user@example.com"}

	_, err := svcs.CryptoService.EncryptText(ctx, weak, "hello")
	require.ErrorIs(t, err, ErrPasswordRejected)
	assert.ErrorIs(t, err, validators.ErrPasswordCommon)

	// a record written before the policy existed is still readable
	cipher := crypto.NewSymmetricCipher()
	deriver, err := crypto.NewKeyDeriver(KDFParams(testConfig().Crypto))
	require.NoError(t, err)
	key, err := deriver.Derive(weak.Password, weak.AccountID)
	require.NoError(t, err)
	record, err := crypto.NewTextCodec(cipher).EncryptText("old entry", key)
	require.NoError(t, err)

	got, err := svcs.CryptoService.DecryptText(ctx, weak, record)
	require.NoError(t, err)
	assert.Equal(t, "old entry", got)
}

func TestJournalCryptoService_MissingCredentials(t *testing.T) {
	svcs, _ := newTestServices(t, nil)
	ctx := context.Background()

	_, err := svcs.CryptoService.EncryptText(ctx, models.Credentials{AccountID: "a@b.c"}, "x")
	assert.ErrorIs(t, err, crypto.ErrInvalidInput)

	_, err = svcs.CryptoService.DecryptText(ctx, models.Credentials{Password: "Summer2024!"}, models.EncryptedRecord{})
	assert.ErrorIs(t, err, crypto.ErrInvalidInput)
}

func TestJournalCryptoService_MalformedRecord(t *testing.T) {
	svcs, _ := newTestServices(t, nil)

	_, err := svcs.CryptoService.DecryptText(context.Background(), testCreds, models.EncryptedRecord{
		Ciphertext: "%%%not-base64",
		IV:         "00112233445566778899aabbccddeeff",
	})
	assert.ErrorIs(t, err, crypto.ErrMalformedRecord)
	assert.False(t, IsWrongPassword(err))
}

func TestJournalCryptoService_ValidatePassword(t *testing.T) {
	svcs, _ := newTestServices(t, nil)
	ctx := context.Background()

	require.NoError(t, svcs.CryptoService.ValidatePassword(ctx, "Summer2024!"))

	err := svcs.CryptoService.ValidatePassword(ctx, "short")
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
	assert.ErrorIs(t, err, validators.ErrPasswordNoUppercase)
	assert.ErrorIs(t, err, validators.ErrPasswordNoDigit)

	score, level := svcs.CryptoService.PasswordStrength("Summer2024!")
	assert.Positive(t, score)
	assert.Equal(t, validators.StrengthStrong, level)
}

func TestJournalCryptoService_EntryRoundTrip(t *testing.T) {
	svcs, _ := newTestServices(t, nil)
	ctx := context.Background()

	media := []models.MediaRef{{ID: "m1", IV: "00112233445566778899aabbccddeeff", MimeType: "image/jpeg"}}
	plain := models.PlainEntry{
		Title: "Monday",
		Body:  "Therapy went well 🌱",
		Media: media,
	}

	entry, err := svcs.CryptoService.EncryptEntry(ctx, testCreds, plain)
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ClientSideID)
	assert.Equal(t, models.ZeroKnowledge, entry.PrivacyLevel)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.NotEqual(t, entry.Title.IV, entry.Body.IV)
	assert.Equal(t, media, entry.Media)

	got, err := svcs.CryptoService.DecryptEntry(ctx, testCreds, entry)
	require.NoError(t, err)
	assert.Equal(t, entry.ClientSideID, got.ClientSideID)
	assert.Equal(t, "Monday", got.Title)
	assert.Equal(t, "Therapy went well 🌱", got.Body)
	assert.Equal(t, media, got.Media)
	assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))
}

func TestJournalCryptoService_EntryWithoutTitle(t *testing.T) {
	svcs, _ := newTestServices(t, nil)
	ctx := context.Background()
	created := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	entry, err := svcs.CryptoService.EncryptEntry(ctx, testCreds, models.PlainEntry{
		ClientSideID: "fixed-id",
		Body:         "no title today",
		CreatedAt:    created,
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", entry.ClientSideID)
	assert.True(t, entry.Title.IsZero())
	assert.Equal(t, created, entry.CreatedAt)

	got, err := svcs.CryptoService.DecryptEntry(ctx, testCreds, entry)
	require.NoError(t, err)
	assert.Empty(t, got.Title)
	assert.Equal(t, "no title today", got.Body)
}

func TestJournalCryptoService_DecryptEntryRejects(t *testing.T) {
	svcs, _ := newTestServices(t, nil)
	ctx := context.Background()

	_, err := svcs.CryptoService.DecryptEntry(ctx, testCreds, models.Entry{
		ClientSideID: "x",
		PrivacyLevel: models.ServerManaged,
	})
	assert.ErrorIs(t, err, ErrServerManagedEntry)

	_, err = svcs.CryptoService.DecryptEntry(ctx, testCreds, models.Entry{
		ClientSideID: "x",
		PrivacyLevel: "public",
	})
	assert.ErrorIs(t, err, crypto.ErrMalformedRecord)

	_, err = svcs.CryptoService.DecryptEntry(ctx, testCreds, models.Entry{
		ClientSideID: "x",
		PrivacyLevel: models.ZeroKnowledge,
		Body:         models.EncryptedRecord{Ciphertext: "abc="},
	})
	assert.ErrorIs(t, err, crypto.ErrMalformedRecord)
	assert.ErrorIs(t, err, validators.ErrEmptyEncryptedField)
}

func TestJournalCryptoService_FileRoundTrip(t *testing.T) {
	svcs, storage := newTestServices(t, nil)
	ctx := context.Background()

	plain := bytes.Repeat([]byte("voice memo "), 500)
	source := filepath.Join(t.TempDir(), "memo.m4a")
	require.NoError(t, os.WriteFile(source, plain, 0o600))

	enc, err := svcs.CryptoService.EncryptFileForUpload(ctx, testCreds, source)
	require.NoError(t, err)
	defer enc.Release()

	dec, err := svcs.CryptoService.DecryptAndDisplay(ctx, testCreds, enc.Path, enc.IV, "audio/mp4")
	require.NoError(t, err)

	assert.Equal(t, "audio/mp4", dec.MimeType)
	assert.Equal(t, storage.Dir(), filepath.Dir(dec.Path))
	got, err := os.ReadFile(dec.Path)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
	require.NoError(t, dec.Release())

	_, err = svcs.CryptoService.EncryptFileForUpload(ctx, testCreds, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, crypto.ErrFileNotFound)
}

func TestJournalCryptoService_DestroysKeyAfterUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	deriver := mock.NewMockKeyDeriver(ctrl)
	text := mock.NewMockTextCodec(ctrl)
	passwords := mock.NewMockValidator(ctrl)

	key, err := crypto.NewKeyMaterial(bytes.Repeat([]byte{9}, crypto.KeySize))
	require.NoError(t, err)

	svc := NewJournalCryptoService(deriver, text, nil, passwords, validators.NewEntryValidator(), logger.Nop())

	gomock.InOrder(
		passwords.EXPECT().
			Validate(gomock.Any(), testCreds, validators.FieldCredentials, validators.FieldPassword).
			Return(nil),
		deriver.EXPECT().Derive(testCreds.Password, testCreds.AccountID).Return(key, nil),
		deriver.EXPECT().Algorithm().Return(crypto.AlgorithmPBKDF2),
		text.EXPECT().EncryptText("hello", key).Return(models.EncryptedRecord{Ciphertext: "c", IV: "i"}, nil),
	)

	record, err := svc.EncryptText(context.Background(), testCreds, "hello")
	require.NoError(t, err)
	assert.Equal(t, "c", record.Ciphertext)

	_, err = crypto.NewTextCodec(crypto.NewSymmetricCipher()).EncryptText("reuse", key)
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func TestJournalCryptoService_DecryptUsesCredentialsCheckOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	deriver := mock.NewMockKeyDeriver(ctrl)
	text := mock.NewMockTextCodec(ctrl)
	passwords := mock.NewMockValidator(ctrl)

	svc := NewJournalCryptoService(deriver, text, nil, passwords, validators.NewEntryValidator(), logger.Nop())

	passwords.EXPECT().
		Validate(gomock.Any(), testCreds, validators.FieldCredentials).
		Return(nil)
	deriver.EXPECT().Derive(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.DecryptText(context.Background(), testCreds, models.EncryptedRecord{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "derive key")
}

func TestJournalCryptoService_FileCodecErrorsDestroyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	deriver := mock.NewMockKeyDeriver(ctrl)
	files := mock.NewMockFileCodec(ctrl)
	passwords := mock.NewMockValidator(ctrl)

	encKey, err := crypto.NewKeyMaterial(bytes.Repeat([]byte{3}, crypto.KeySize))
	require.NoError(t, err)
	decKey, err := crypto.NewKeyMaterial(bytes.Repeat([]byte{4}, crypto.KeySize))
	require.NoError(t, err)

	svc := NewJournalCryptoService(deriver, nil, files, passwords, validators.NewEntryValidator(), logger.Nop())
	ctx := context.Background()

	passwords.EXPECT().Validate(gomock.Any(), testCreds, gomock.Any()).Return(nil).AnyTimes()
	deriver.EXPECT().Algorithm().Return(crypto.AlgorithmPBKDF2).AnyTimes()
	gomock.InOrder(
		deriver.EXPECT().Derive(testCreds.Password, testCreds.AccountID).Return(encKey, nil),
		files.EXPECT().EncryptFile(ctx, "/photos/a.jpg", encKey).
			Return(nil, errors.Join(crypto.ErrStorage, errors.New("disk full"))),
		deriver.EXPECT().Derive(testCreds.Password, testCreds.AccountID).Return(decKey, nil),
		files.EXPECT().DecryptFile(ctx, "/photos/a.jpg.enc", "00", decKey, "image/jpeg").
			Return(nil, crypto.ErrDecryptionFailed),
	)

	_, err = svc.EncryptFileForUpload(ctx, testCreds, "/photos/a.jpg")
	assert.ErrorIs(t, err, crypto.ErrStorage)

	_, err = svc.DecryptAndDisplay(ctx, testCreds, "/photos/a.jpg.enc", "00", "image/jpeg")
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)

	codec := crypto.NewTextCodec(crypto.NewSymmetricCipher())
	for _, key := range []*crypto.KeyMaterial{encKey, decKey} {
		_, err = codec.EncryptText("reuse", key)
		assert.ErrorIs(t, err, crypto.ErrInvalidKey)
	}
}
