package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-journal-vault/internal/adapter"
	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/mock"
	"github.com/MKhiriev/go-journal-vault/internal/validators"
	"github.com/MKhiriev/go-journal-vault/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func tempEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestMediaService_UploadDownloadRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockMediaStore(ctrl)
	svcs, storage := newTestServices(t, remote)
	ctx := context.Background()

	photo := append(append([]byte{}, pngMagic...), bytes.Repeat([]byte{0x5A}, 3000)...)
	source := filepath.Join(t.TempDir(), "photo")
	require.NoError(t, os.WriteFile(source, photo, 0o600))

	var blob []byte
	remote.EXPECT().
		Upload(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref models.MediaRef, body io.ReadSeeker) (models.MediaRef, error) {
			assert.NotEmpty(t, ref.ID)
			assert.Len(t, ref.IV, 32)
			assert.Equal(t, "image/png", ref.MimeType)

			var err error
			blob, err = io.ReadAll(body)
			require.NoError(t, err)
			assert.Zero(t, len(blob)%16)

			ref.URL = "https://media.example.com/" + ref.ID
			ref.Size = int64(len(blob))
			return ref, nil
		})

	ref, err := svcs.MediaService.Upload(ctx, testCreds, source, "")
	require.NoError(t, err)
	assert.Equal(t, int64(len(blob)), ref.Size)
	assert.Zero(t, tempEntries(t, storage.Dir()), "encrypted upload file must be released")

	remote.EXPECT().
		Download(ctx, ref, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.MediaRef, dst io.Writer) error {
			_, err := dst.Write(blob)
			return err
		})

	dec, err := svcs.MediaService.Download(ctx, testCreds, ref)
	require.NoError(t, err)

	assert.Equal(t, "image/png", dec.MimeType)
	assert.Equal(t, ".png", filepath.Ext(dec.Path))
	got, err := os.ReadFile(dec.Path)
	require.NoError(t, err)
	assert.Equal(t, photo, got)

	// only the decrypted file is left; the staged ciphertext is gone
	assert.Equal(t, 1, tempEntries(t, storage.Dir()))
	require.NoError(t, dec.Release())
	assert.Zero(t, tempEntries(t, storage.Dir()))
}

func TestMediaService_UploadErrorsAreMapped(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"not found", fmt.Errorf("%w: gone", adapter.ErrNotFound), crypto.ErrFileNotFound},
		{"forbidden", adapter.ErrForbidden, ErrRemoteStore},
		{"network", errors.New("connection refused"), ErrRemoteStore},
		{"cancelled", context.Canceled, context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			remote := mock.NewMockMediaStore(ctrl)
			svcs, storage := newTestServices(t, remote)

			source := filepath.Join(t.TempDir(), "note.txt")
			require.NoError(t, os.WriteFile(source, []byte("hello"), 0o600))

			remote.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.MediaRef{}, tt.err)

			_, err := svcs.MediaService.Upload(context.Background(), testCreds, source, "text/plain")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, tempEntries(t, storage.Dir()))
		})
	}
}

func TestMediaService_UploadMissingSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockMediaStore(ctrl)
	svcs, _ := newTestServices(t, remote)

	_, err := svcs.MediaService.Upload(context.Background(), testCreds, filepath.Join(t.TempDir(), "nope"), "")
	assert.ErrorIs(t, err, crypto.ErrFileNotFound)
}

func TestMediaService_DownloadWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	cryptoSvc := mock.NewMockJournalCryptoService(ctrl)
	remote := mock.NewMockMediaStore(ctrl)
	storage := newTestStorage(t)

	svc := NewMediaService(cryptoSvc, remote, storage, validators.NewEntryValidator(), logger.Nop())
	ref := models.MediaRef{ID: "m1", IV: "00112233445566778899aabbccddeeff", MimeType: "image/jpeg"}

	remote.EXPECT().Download(gomock.Any(), ref, gomock.Any()).Return(nil)
	cryptoSvc.EXPECT().
		DecryptAndDisplay(gomock.Any(), testCreds, gomock.Any(), ref.IV, ref.MimeType).
		Return(nil, fmt.Errorf("decrypt file: %w", crypto.ErrDecryptionFailed))

	_, err := svc.Download(context.Background(), testCreds, ref)
	require.Error(t, err)
	assert.True(t, IsWrongPassword(err))
	assert.Zero(t, tempEntries(t, storage.Dir()))
}

func TestMediaService_DownloadRemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cryptoSvc := mock.NewMockJournalCryptoService(ctrl)
	remote := mock.NewMockMediaStore(ctrl)
	storage := newTestStorage(t)

	svc := NewMediaService(cryptoSvc, remote, storage, validators.NewEntryValidator(), logger.Nop())
	ref := models.MediaRef{URL: "https://media.example.com/x", IV: "00112233445566778899aabbccddeeff"}

	remote.EXPECT().Download(gomock.Any(), ref, gomock.Any()).Return(adapter.ErrIntegrityMismatch)

	_, err := svc.Download(context.Background(), testCreds, ref)
	assert.ErrorIs(t, err, ErrRemoteStore)
	assert.ErrorIs(t, err, adapter.ErrIntegrityMismatch)
	assert.Zero(t, tempEntries(t, storage.Dir()))
}

func TestMediaService_DownloadInvalidRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMediaService(
		mock.NewMockJournalCryptoService(ctrl),
		mock.NewMockMediaStore(ctrl),
		mock.NewMockTempFileStorage(ctrl),
		validators.NewEntryValidator(),
		logger.Nop(),
	)

	_, err := svc.Download(context.Background(), testCreds, models.MediaRef{ID: "m1"})
	assert.ErrorIs(t, err, crypto.ErrMalformedRecord)
	assert.ErrorIs(t, err, validators.ErrInvalidMediaRef)
}

func TestMediaService_DownloadStagingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockTempFileStorage(ctrl)
	svc := NewMediaService(
		mock.NewMockJournalCryptoService(ctrl),
		mock.NewMockMediaStore(ctrl),
		storage,
		validators.NewEntryValidator(),
		logger.Nop(),
	)

	storage.EXPECT().Create(gomock.Any(), gomock.Any(), "").Return(nil, errors.New("read-only file system"))

	_, err := svc.Download(context.Background(), testCreds, models.MediaRef{ID: "m1", IV: "00"})
	assert.ErrorIs(t, err, crypto.ErrStorage)
}

func TestMediaService_DownloadLocalWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockTempFileStorage(ctrl)
	remote := mock.NewMockMediaStore(ctrl)
	svc := NewMediaService(mock.NewMockJournalCryptoService(ctrl), remote, storage, validators.NewEntryValidator(), logger.Nop())

	// a read-only handle makes every write fail like a full disk would
	path := filepath.Join(t.TempDir(), "enc-staged")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	readOnly, err := os.Open(path)
	require.NoError(t, err)

	ref := models.MediaRef{ID: "m1", IV: "00112233445566778899aabbccddeeff"}
	storage.EXPECT().Create(gomock.Any(), gomock.Any(), "").Return(readOnly, nil)
	storage.EXPECT().Remove(path).Return(nil)
	remote.EXPECT().Download(gomock.Any(), ref, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.MediaRef, dst io.Writer) error {
			_, err := io.Copy(dst, bytes.NewReader([]byte("ciphertext")))
			return fmt.Errorf("download media body: %w", err)
		})

	_, err = svc.Download(context.Background(), testCreds, ref)
	assert.ErrorIs(t, err, crypto.ErrStorage)
	assert.NotErrorIs(t, err, ErrRemoteStore)
}

func TestMediaService_Disabled(t *testing.T) {
	svcs, _ := newTestServices(t, nil)

	_, err := svcs.MediaService.Upload(context.Background(), testCreds, "x", "")
	assert.ErrorIs(t, err, ErrMediaStoreDisabled)

	_, err = svcs.MediaService.Download(context.Background(), testCreds, models.MediaRef{})
	assert.ErrorIs(t, err, ErrMediaStoreDisabled)
}
