// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal-vault/internal/client"
	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/models"
)

const (
	envPassword = config.EnvPrefix + "PASSWORD"
	envAccount  = config.EnvPrefix + "ACCOUNT"
)

// cliEnv carries what the persistent pre-run builds for the subcommands.
type cliEnv struct {
	flags         *config.Flags
	account       string
	passwordStdin bool

	command string
	cfg     *config.StructuredConfig
	log     *logger.Logger
	app     *client.App
	stdin   *bufio.Reader
	stop    func()
}

func newCLIEnv() *cliEnv {
	return &cliEnv{}
}

func (e *cliEnv) close() {
	if e.stop != nil {
		e.stop()
		e.stop = nil
	}
}

func newRootCmd(env *cliEnv) *cobra.Command {
	root := &cobra.Command{
		Use:   "journalvault",
		Short: "Zero-knowledge encryption for journal entries and media",
		Long: `journalvault encrypts journal text and media files on this device with a
key derived from your password and account id. The password never leaves
the device, and nothing it protects can be read without it.

Password sources, in order:
  --password-stdin        first line of standard input
  ` + envPassword + `   environment variable
  interactive prompt      when standard input is a terminal

The account id comes from --account or ` + envAccount + `.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	env.flags = config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().StringVarP(&env.account, "account", "a", "", "Account id the key is bound to (env "+envAccount+")")
	root.PersistentFlags().BoolVar(&env.passwordStdin, "password-stdin", false, "Read the password from the first line of stdin")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(
		newValidatePasswordCmd(env),
		newEncryptTextCmd(env),
		newDecryptTextCmd(env),
		newEncryptFileCmd(env),
		newDecryptFileCmd(env),
		newUploadCmd(env),
		newDownloadCmd(env),
		newSweepCmd(env),
		newVersionCmd(),
	)

	return root
}

// setup loads the configuration, opens the log and wires the application.
// Background workers start here and stop in close.
func (e *cliEnv) setup(cmd *cobra.Command) error {
	e.command = cmd.CommandPath()

	cfg, err := config.Load(e.flags)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log = logger.NewClientLogger("cli", cfg.Log.File, cfg.Log.Level)

	a, err := client.NewApp(cfg, e.log)
	if err != nil {
		return err
	}
	e.app = a
	cmd.SetContext(e.log.WithContext(cmd.Context()))
	e.stop = a.Start(cmd.Context())

	e.log.Debug().Str("command", e.command).Str("adapter", cfg.Adapter.Kind).Msg("cli started")
	return nil
}

func (e *cliEnv) input(cmd *cobra.Command) *bufio.Reader {
	if e.stdin == nil {
		e.stdin = bufio.NewReader(cmd.InOrStdin())
	}
	return e.stdin
}

// credentials collects the account id and password for an operation.
// confirm asks for the password twice when prompting interactively.
func (e *cliEnv) credentials(cmd *cobra.Command, confirm bool) (models.Credentials, error) {
	account := e.account
	if account == "" {
		account = os.Getenv(envAccount)
	}
	if account == "" {
		return models.Credentials{}, usageError{fmt.Errorf("account id is required (--account or %s)", envAccount)}
	}

	password, err := e.readPassword(cmd, confirm, false)
	if err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{Password: password, AccountID: account}, nil
}

type usageError struct {
	err error
}

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func isUsageError(err error) bool {
	var u usageError
	return errors.As(err, &u)
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
