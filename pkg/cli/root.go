/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/framesight/pkg/logging"
)

const name = "framesight"

var (
	// overridden during build with ldflags
	version = "dev"
)

// New builds the root command tree.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Frame-scoped diagnostic snapshot pipeline",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "host log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to YAML config file",
				Sources: cli.EnvVars("FRAMESIGHT_CONFIG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			observeCmd(),
			captureCmd(),
			policyCmd(),
		},
	}
}

// Execute runs the root command. Called by main.main.
func Execute(ctx context.Context) error {
	return New().Run(ctx, os.Args)
}

var (
	outputFlag = &cli.StringFlag{
		Name:  "output",
		Usage: "output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "output format (json, yaml)",
		Value: "json",
	}
)
