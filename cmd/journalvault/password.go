// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal-vault/internal/validators"
)

func newValidatePasswordCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-password",
		Short: "Check a password against the policy and score its strength",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := env.readPassword(cmd, false, true)
			if err != nil {
				return err
			}

			svc := env.app.Services().CryptoService
			score, level := svc.PasswordStrength(password)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Strength: %d/100 (%s)\n", score, strengthColor(level)(level.String()))

			if err = svc.ValidatePassword(cmd.Context(), password); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successLine("password meets the policy"))
			return nil
		},
	}
}

func strengthColor(level validators.StrengthLevel) func(format string, a ...any) string {
	switch level {
	case validators.StrengthStrong, validators.StrengthGood:
		return color.GreenString
	case validators.StrengthFair:
		return color.YellowString
	default:
		return color.RedString
	}
}
