/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/framesight/pkg/capture"
	"github.com/NVIDIA/framesight/pkg/config"
	"github.com/NVIDIA/framesight/pkg/providers"
	"github.com/NVIDIA/framesight/pkg/serializer"
)

func captureCmd() *cli.Command {
	return &cli.Command{
		Name:  "capture",
		Usage: "Capture a single diagnostic snapshot of the host process",
		Description: `Registers the built-in providers, captures one snapshot outside any
frame loop (frame 0, zero delta), and writes it to --output.

Use --only to restrict the capture to specific provider names; this
takes the lightweight minimal path that bypasses the snapshot cache.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "only",
				Usage: "capture only the named providers (can be repeated)",
			},
			outputFlag,
			formatFlag,
		},
		Action: runCapture,
	}
}

func runCapture(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", outFormat)
	}

	cctx := capture.NewContext()
	registerProviders(cctx, cfg, providers.NewTiming())

	var snap *capture.Snapshot
	if only := cmd.StringSlice("only"); len(only) > 0 {
		snap = cctx.CaptureMinimal(only)
	} else {
		snap = cctx.CaptureSnapshot(false)
	}

	w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer w.Close()
	return w.Serialize(ctx, snap)
}
