// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/models"
)

func newEncryptTextCmd(env *cliEnv) *cobra.Command {
	var copyOut bool

	cmd := &cobra.Command{
		Use:   "encrypt-text [text]",
		Short: "Encrypt a journal text and print the record as JSON",
		Long: `Encrypt a journal text and print {"ciphertext", "iv"} as JSON.

The text is taken from the argument or, when omitted, from the rest of
standard input (after the password line when --password-stdin is set).`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := env.credentials(cmd, true)
			if err != nil {
				return err
			}

			text, err := textArg(env, cmd, args)
			if err != nil {
				return err
			}

			_, cleanup := startSpinner(cmd, "Encrypting...")
			record, err := env.app.Services().CryptoService.EncryptText(cmd.Context(), creds, text)
			cleanup()
			if err != nil {
				return err
			}

			if err = writeJSON(cmd.OutOrStdout(), record); err != nil {
				return err
			}
			if copyOut {
				raw, _ := json.Marshal(record)
				copyToClipboard(cmd, true, string(raw))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyOut, "copy", false, "Also copy the record JSON to the clipboard")
	return cmd
}

func newDecryptTextCmd(env *cliEnv) *cobra.Command {
	var (
		ciphertext string
		iv         string
		recordJSON string
		copyOut    bool
	)

	cmd := &cobra.Command{
		Use:   "decrypt-text",
		Short: "Decrypt a journal text record",
		Long: `Decrypt a record produced by encrypt-text. Pass it either as --record
'{"ciphertext": "...", "iv": "..."}' or with --ciphertext and --iv.

A wrong password exits with code 3.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := parseRecord(recordJSON, ciphertext, iv)
			if err != nil {
				return err
			}

			creds, err := env.credentials(cmd, false)
			if err != nil {
				return err
			}

			_, cleanup := startSpinner(cmd, "Decrypting...")
			text, err := env.app.Services().CryptoService.DecryptText(cmd.Context(), creds, record)
			cleanup()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
			copyToClipboard(cmd, copyOut, text)
			return nil
		},
	}

	cmd.Flags().StringVar(&recordJSON, "record", "", "Encrypted record as JSON")
	cmd.Flags().StringVar(&ciphertext, "ciphertext", "", "Base64 ciphertext")
	cmd.Flags().StringVar(&iv, "iv", "", "Hex IV")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Also copy the plaintext to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("record", "ciphertext")
	cmd.MarkFlagsMutuallyExclusive("record", "iv")
	return cmd
}

func textArg(env *cliEnv, cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	raw, err := io.ReadAll(env.input(cmd))
	if err != nil {
		return "", fmt.Errorf("read text from stdin: %w", err)
	}
	return strings.TrimSuffix(string(raw), "\n"), nil
}

func parseRecord(recordJSON, ciphertext, iv string) (models.EncryptedRecord, error) {
	if recordJSON == "" {
		return models.EncryptedRecord{Ciphertext: ciphertext, IV: iv}, nil
	}

	var record models.EncryptedRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", crypto.ErrMalformedRecord, err)
	}
	return record, nil
}
