/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/framesight/pkg/level"
	"github.com/NVIDIA/framesight/pkg/serializer"
)

// policyRow is one line of the level policy table.
type policyRow struct {
	Level      string  `json:"level" yaml:"level"`
	Priority   int     `json:"priority" yaml:"priority"`
	SampleRate float64 `json:"sampleRate" yaml:"sampleRate"`
}

func policyCmd() *cli.Command {
	return &cli.Command{
		Name:  "policy",
		Usage: "Show the level policy table (priorities and sampling rates)",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			title := cases.Title(language.English)
			rows := make([]policyRow, 0, len(level.Levels))
			for _, l := range level.Levels {
				rows = append(rows, policyRow{
					Level:      title.String(l.String()),
					Priority:   level.Priority(l),
					SampleRate: level.DefaultSampleRate(l),
				})
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()
			return w.Serialize(ctx, rows)
		},
	}
}
