// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/tui"
)

// readPassword takes the password from --password-stdin, the environment
// or an interactive prompt, in that order. The value is returned exactly
// as typed apart from the trailing line break.
func (e *cliEnv) readPassword(cmd *cobra.Command, confirm, showStrength bool) (string, error) {
	if e.passwordStdin {
		line, err := e.input(cmd).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
	}

	if password, ok := os.LookupEnv(envPassword); ok && password != "" {
		return password, nil
	}

	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return "", fmt.Errorf("%w: no password given (use --password-stdin or %s)", crypto.ErrInvalidInput, envPassword)
	}

	opts := tui.PromptOptions{Confirm: confirm}
	if showStrength {
		opts.Title = "CHECK PASSWORD"
		opts.Strength = e.app.Services().CryptoService.PasswordStrength
	}
	return tui.New(in, cmd.ErrOrStderr()).PromptPassword(cmd.Context(), opts)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
