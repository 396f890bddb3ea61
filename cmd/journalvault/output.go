// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/tui"
)

// startSpinner shows message on stderr while the key is derived and the
// data is processed. It is silent when stderr is not a terminal. The
// returned cleanup stops the spinner and prints FinalMSG if set.
func startSpinner(cmd *cobra.Command, message string) (*spinner.Spinner, func()) {
	errOut := cmd.ErrOrStderr()
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(errOut))
	s.Suffix = " " + message
	_ = s.Color("cyan")

	active := isTerminal(errOut)
	if active {
		s.Start()
	}

	return s, func() {
		finalMsg := s.FinalMSG
		s.FinalMSG = ""
		if active {
			s.Stop()
		}
		if finalMsg != "" {
			_, _ = fmt.Fprintln(errOut, finalMsg)
		}
	}
}

func successLine(msg string) string {
	return color.GreenString("✓") + " " + msg
}

func hintLine(msg string) string {
	return color.CyanString("→") + " " + msg
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// copyToClipboard copies text when requested and reports the outcome on
// stderr. A clipboard failure does not fail the command.
func copyToClipboard(cmd *cobra.Command, enabled bool, text string) {
	if !enabled {
		return
	}
	if err := tui.CopyToClipboard(text); err != nil {
		logger.FromContext(cmd.Context()).Warn().Err(err).Msg("clipboard copy failed")
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("!")+" "+err.Error())
		return
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), successLine("copied to clipboard"))
}

// moveFile moves a temp file to dst, copying when a rename is not
// possible (for example across file systems). dst must not exist.
func moveFile(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s already exists", crypto.ErrStorage, dst)
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %w", crypto.ErrStorage, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("%w: %w", crypto.ErrStorage, err)
	}
	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("%w: %w", crypto.ErrStorage, err)
	}
	if err = out.Close(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("%w: %w", crypto.ErrStorage, err)
	}
	return nil
}
