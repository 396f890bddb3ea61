// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSweepCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete stale temporary files left by interrupted operations",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := env.app.Sweeper().SweepOnce(cmd.Context())
			if err != nil {
				return err
			}

			dir := env.app.Storage().Dir()
			if removed == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), hintLine("no stale files in "+color.YellowString(dir)))
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successLine(fmt.Sprintf("removed %d stale file(s) from %s", removed, color.YellowString(dir))))
			return nil
		},
	}
}
