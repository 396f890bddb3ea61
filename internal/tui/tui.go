// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the small Bubble Tea programs the CLI uses for
// interactive input: a masked password prompt with an optional strength
// meter and confirmation field.
package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-journal-vault/internal/validators"
)

// StrengthFunc scores a candidate password for the strength meter.
type StrengthFunc func(password string) (int, validators.StrengthLevel)

// PromptOptions configures [TUI.PromptPassword].
type PromptOptions struct {
	// Title is shown above the input.
	Title string
	// Confirm adds a second field that must match the first.
	Confirm bool
	// Strength enables the live strength meter when non-nil.
	Strength StrengthFunc
}

type TUI struct {
	in  io.Reader
	out io.Writer
}

// New returns a TUI reading keys from in and drawing to out.
func New(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

// PromptPassword runs the password prompt until the user submits or quits.
// Quitting with esc or ctrl+c returns [ErrUserQuit].
func (t *TUI) PromptPassword(ctx context.Context, opts PromptOptions) (string, error) {
	model := newPasswordModel(opts)

	finalModel, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", err
	}

	result, ok := finalModel.(*passwordModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.password(), nil
}
