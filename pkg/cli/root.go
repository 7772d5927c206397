/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/recipeapp/recipegen/pkg/defaults"
	"github.com/recipeapp/recipegen/pkg/logging"
	"github.com/recipeapp/recipegen/pkg/serializer"
)

const (
	name           = "recipegen"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage: fmt.Sprintf("Output format (supported values: %v). Defaults to the output file extension, then json.",
			serializer.SupportedFormats()),
	}
}

func kubeconfigFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Aliases: []string{"k"},
		Usage:   "Path to kubeconfig file for cm:// targets (overrides KUBECONFIG env)",
	}
}

// newRootCmd assembles the command tree. generate runs when no command is given.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:                 "Recipe corpus generator",
		EnableShellCompletion: true,
		DefaultCommand:        "generate",
		Description: `Generates a synthetic corpus of cooking recipes from compiled-in tables.

generate - builds the corpus and writes it to a file, stdout or a ConfigMap.
catalog  - prints the compiled-in tables.
validate - re-checks a corpus against the tables.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCmd(),
			catalogCmd(),
			validateCmd(),
		},
	}
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status: 2 for cancellation,
// 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 2
	}
	return 1
}

// resolveFormat returns the --format value or, when unset, the format implied
// by the output path.
func resolveFormat(cmd *cli.Command, output string) (serializer.Format, error) {
	if f := cmd.String("format"); f != "" {
		return serializer.ParseFormat(f)
	}
	if output == "" || output == defaults.StdoutTarget {
		return serializer.FormatJSON, nil
	}
	return serializer.FormatFromPath(output), nil
}
