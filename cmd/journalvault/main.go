// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command journalvault encrypts and decrypts journal text and media on the
// device with a key derived from the user's password.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-journal-vault/internal/app"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	env := newCLIEnv()
	defer env.close()

	root := newRootCmd(env)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return app.ExitOK
	}

	if env.log != nil {
		env.log.Warn().Str("command", env.command).Int("exit_code", app.ExitCode(err)).Msg("command failed")
	}

	if isUsageError(err) {
		printError(stderr, err.Error())
		return app.ExitUsage
	}
	printError(stderr, app.UserMessage(err))
	return app.ExitCode(err)
}

func printError(w io.Writer, msg string) {
	_, _ = io.WriteString(w, color.RedString("✗")+" "+msg+"\n")
}
