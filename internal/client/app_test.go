package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/service"
	"github.com/MKhiriev/go-journal-vault/models"
)

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	cfg := config.Default()
	cfg.Crypto.PBKDF2Iterations = 1000
	cfg.Storage.TempDir = filepath.Join(t.TempDir(), "vault")
	return cfg
}

func TestNewApp_WiresServices(t *testing.T) {
	app, err := NewApp(testConfig(t), logger.Nop())
	require.NoError(t, err)

	creds := models.Credentials{Password: "Summer2024!", AccountID: "user@example.com"}
	ctx := context.Background()

	rec, err := app.Services().CryptoService.EncryptText(ctx, creds, "Dear diary")
	require.NoError(t, err)
	got, err := app.Services().CryptoService.DecryptText(ctx, creds, rec)
	require.NoError(t, err)
	assert.Equal(t, "Dear diary", got)

	_, err = app.Services().MediaService.Upload(ctx, creds, "photo.png", "")
	assert.ErrorIs(t, err, service.ErrMediaStoreDisabled)
}

func TestNewApp_UnsupportedKDF(t *testing.T) {
	cfg := testConfig(t)
	cfg.Crypto.KDFAlgorithm = "md5"

	_, err := NewApp(cfg, logger.Nop())
	assert.Error(t, err)
}

func TestNewApp_TempDirIsAFile(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	cfg.Storage.TempDir = blocker

	_, err := NewApp(cfg, logger.Nop())
	assert.Error(t, err)
}

func TestNewMediaStore(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Adapter
		wantNil bool
		wantErr bool
	}{
		{name: "none", cfg: config.Adapter{Kind: config.AdapterNone}, wantNil: true},
		{name: "empty kind", cfg: config.Adapter{}, wantNil: true},
		{name: "http", cfg: config.Adapter{Kind: config.AdapterHTTP, HTTPAddress: "localhost:8080", RequestTimeout: time.Second}},
		{name: "http bad address", cfg: config.Adapter{Kind: config.AdapterHTTP}, wantErr: true},
		{name: "s3", cfg: config.Adapter{Kind: config.AdapterS3, S3: config.S3{Bucket: "journal", Region: "us-east-1"}}},
		{name: "s3 without bucket", cfg: config.Adapter{Kind: config.AdapterS3}, wantErr: true},
		{name: "unknown", cfg: config.Adapter{Kind: "ftp"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := NewMediaStore(tt.cfg, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, ms)
			} else {
				assert.NotNil(t, ms)
			}
		})
	}
}

func TestApp_StartSweepsStaleFiles(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.OrphanTTL = time.Minute
	cfg.Workers.SweepInterval = time.Hour

	app, err := NewApp(cfg, logger.Nop())
	require.NoError(t, err)

	stale := filepath.Join(app.Storage().Dir(), "plain-stale.png")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o600))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	stop := app.Start(context.Background())
	assert.Eventually(t, func() bool {
		_, err := os.Stat(stale)
		return os.IsNotExist(err)
	}, 2*time.Second, 10*time.Millisecond)

	stop()
	stop()
}

func TestApp_SweeperSweepOnce(t *testing.T) {
	app, err := NewApp(testConfig(t), logger.Nop())
	require.NoError(t, err)

	n, err := app.Sweeper().SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
