// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal-vault/internal/crypto"
)

const encryptedExt = ".enc"

type encryptedFileOutput struct {
	Path string `json:"path"`
	IV   string `json:"iv"`
	Size int64  `json:"size"`
}

type decryptedFileOutput struct {
	Path     string `json:"path"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

func newEncryptFileCmd(env *cliEnv) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "encrypt-file <source>",
		Short: "Encrypt a media file",
		Long: `Encrypt a media file and write the ciphertext to --out (default
<source>.enc). The IV printed in the JSON result is needed to decrypt it.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			if out == "" {
				out = source + encryptedExt
			}

			creds, err := env.credentials(cmd, true)
			if err != nil {
				return err
			}

			_, cleanup := startSpinner(cmd, "Encrypting "+filepath.Base(source)+"...")
			enc, err := env.app.Services().CryptoService.EncryptFileForUpload(cmd.Context(), creds, source)
			cleanup()
			if err != nil {
				return err
			}
			defer releaseFile(env, enc.Release)

			if err = moveFile(enc.Path, out); err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), encryptedFileOutput{Path: out, IV: enc.IV, Size: enc.Size})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Where to write the ciphertext")
	return cmd
}

func newDecryptFileCmd(env *cliEnv) *cobra.Command {
	var (
		out      string
		iv       string
		mimeType string
	)

	cmd := &cobra.Command{
		Use:   "decrypt-file <source>",
		Short: "Decrypt a media file produced by encrypt-file",
		Long: `Decrypt a media file. Without --mime the type is detected from the
decrypted content. Without --out the result is written next to the source
with the .enc suffix dropped and the detected extension added.

A wrong password exits with code 3.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]

			creds, err := env.credentials(cmd, false)
			if err != nil {
				return err
			}

			_, cleanup := startSpinner(cmd, "Decrypting "+filepath.Base(source)+"...")
			dec, err := env.app.Services().CryptoService.DecryptAndDisplay(cmd.Context(), creds, source, iv, mimeType)
			cleanup()
			if err != nil {
				return err
			}

			return saveDecrypted(env, cmd, dec, out, strings.TrimSuffix(source, encryptedExt))
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Where to write the plaintext")
	cmd.Flags().StringVar(&iv, "iv", "", "Hex IV printed by encrypt-file")
	cmd.Flags().StringVar(&mimeType, "mime", "", "Original MIME type, if known")
	return cmd
}

// saveDecrypted moves a decrypted temp file to out, or to base plus the
// detected extension when out is empty, and prints the result.
func saveDecrypted(env *cliEnv, cmd *cobra.Command, dec *crypto.DecryptedFile, out, base string) error {
	defer releaseFile(env, dec.Release)

	if out == "" {
		out = base
		if ext := filepath.Ext(dec.Path); ext != "" && filepath.Ext(base) != ext {
			out += ext
		}
	}

	if err := moveFile(dec.Path, out); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), successLine("decrypted to "+color.YellowString(out)))
	return writeJSON(cmd.OutOrStdout(), decryptedFileOutput{Path: out, MimeType: dec.MimeType, Size: dec.Size})
}

func releaseFile(env *cliEnv, release func() error) {
	if err := release(); err != nil {
		env.log.Error().Err(err).Msg("failed to release temp file")
	}
}
