// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the wired application.
type Client interface {
	// Start launches background workers and returns a function that stops
	// them and waits for them to exit.
	Start(ctx context.Context) (stop func())
}
