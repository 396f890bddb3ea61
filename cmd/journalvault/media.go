// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/models"
)

func newUploadCmd(env *cliEnv) *cobra.Command {
	var mimeType string

	cmd := &cobra.Command{
		Use:   "upload <source>",
		Short: "Encrypt a media file and upload it to the media store",
		Long: `Encrypt a media file and upload the ciphertext to the configured media
store (--adapter http or s3). Prints the media reference as JSON; keep it
to download the file later.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := env.credentials(cmd, true)
			if err != nil {
				return err
			}

			_, cleanup := startSpinner(cmd, "Uploading...")
			ref, err := env.app.Services().MediaService.Upload(cmd.Context(), creds, args[0], mimeType)
			cleanup()
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), ref)
		},
	}

	cmd.Flags().StringVar(&mimeType, "mime", "", "MIME type (detected when empty)")
	return cmd
}

func newDownloadCmd(env *cliEnv) *cobra.Command {
	var (
		refJSON string
		ref     models.MediaRef
		out     string
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download and decrypt a media file",
		Long: `Download a media file from the configured media store and decrypt it.
Pass the reference printed by upload as --ref, or its parts with --id or
--url plus --iv and --mime.

A wrong password exits with code 3.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if refJSON != "" {
				if err := json.Unmarshal([]byte(refJSON), &ref); err != nil {
					return fmt.Errorf("%w: %w", crypto.ErrMalformedRecord, err)
				}
			}

			creds, err := env.credentials(cmd, false)
			if err != nil {
				return err
			}

			_, cleanup := startSpinner(cmd, "Downloading...")
			dec, err := env.app.Services().MediaService.Download(cmd.Context(), creds, ref)
			cleanup()
			if err != nil {
				return err
			}

			return saveDecrypted(env, cmd, dec, out, downloadBase(ref.ID))
		},
	}

	cmd.Flags().StringVar(&refJSON, "ref", "", "Media reference JSON printed by upload")
	cmd.Flags().StringVar(&ref.ID, "id", "", "Media id")
	cmd.Flags().StringVar(&ref.URL, "url", "", "Media URL")
	cmd.Flags().StringVar(&ref.IV, "iv", "", "Hex IV")
	cmd.Flags().StringVar(&ref.MimeType, "mime", "", "Original MIME type")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Where to write the plaintext")
	cmd.MarkFlagsMutuallyExclusive("ref", "id")
	cmd.MarkFlagsMutuallyExclusive("ref", "url")
	return cmd
}

// downloadBase turns a media id into a file name in the working directory.
// The id may come from the server, so any directory part is dropped.
func downloadBase(id string) string {
	base := filepath.Base(strings.ReplaceAll(id, "\\", "/"))
	switch base {
	case "", ".", "..", "/":
		return "media"
	}
	return base
}
