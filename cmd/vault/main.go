// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command vault is a local encrypted secret vault with an optional
// mirrored export file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akgarhwal/vault/internal/app"
	"github.com/akgarhwal/vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, info); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", app.UserMessage(err))
		stop()
		os.Exit(1)
	}
}
