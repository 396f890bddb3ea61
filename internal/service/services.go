package service

import (
	"fmt"

	"github.com/MKhiriev/go-journal-vault/internal/adapter"
	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/MKhiriev/go-journal-vault/internal/validators"
)

type ClientServices struct {
	CryptoService JournalCryptoService
	MediaService  MediaService
}

// NewClientServices builds the engine from cfg. mediaStore may be nil, in
// which case MediaService returns [ErrMediaStoreDisabled].
func NewClientServices(cfg *config.StructuredConfig, storage store.TempFileStorage, mediaStore adapter.MediaStore, log *logger.Logger) (*ClientServices, error) {
	deriver, err := crypto.NewKeyDeriver(KDFParams(cfg.Crypto))
	if err != nil {
		return nil, fmt.Errorf("create key deriver: %w", err)
	}

	var opts []crypto.Option
	if cfg.Crypto.ChunkSize > 0 {
		opts = append(opts, crypto.WithChunkSize(cfg.Crypto.ChunkSize))
	}
	cipher := crypto.NewSymmetricCipher(opts...)
	entryValidator := validators.NewEntryValidator()

	cryptoSvc := NewJournalCryptoService(
		deriver,
		crypto.NewTextCodec(cipher),
		crypto.NewFileCodec(cipher, storage, log),
		validators.NewPasswordValidator(PasswordPolicy(cfg.Policy)),
		entryValidator,
		log,
	)

	var mediaSvc MediaService = disabledMediaService{}
	if mediaStore != nil {
		mediaSvc = NewMediaService(cryptoSvc, mediaStore, storage, entryValidator, log)
	}

	return &ClientServices{
		CryptoService: cryptoSvc,
		MediaService:  mediaSvc,
	}, nil
}

// KDFParams converts the crypto config group into derivation parameters.
func KDFParams(c config.Crypto) crypto.KDFParams {
	return crypto.KDFParams{
		Algorithm:  c.KDFAlgorithm,
		Iterations: c.PBKDF2Iterations,
		Time:       c.Argon2Time,
		MemoryKB:   c.Argon2MemoryKB,
		Threads:    c.Argon2Threads,
	}
}

// PasswordPolicy converts the policy config group into validator rules.
func PasswordPolicy(p config.Policy) validators.PasswordPolicy {
	return validators.PasswordPolicy{
		MinLength:        p.MinLength,
		MaxLength:        p.MaxLength,
		RequireLowercase: !p.AllowNoLowercase,
		RequireUppercase: !p.AllowNoUppercase,
		RequireDigit:     !p.AllowNoDigit,
		RequireSpecial:   !p.AllowNoSpecial,
		RejectCommon:     !p.AllowCommon,
	}
}
