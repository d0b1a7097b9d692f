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
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/framesight/pkg/capture"
	"github.com/NVIDIA/framesight/pkg/config"
	"github.com/NVIDIA/framesight/pkg/emit"
	"github.com/NVIDIA/framesight/pkg/level"
	"github.com/NVIDIA/framesight/pkg/providers"
	"github.com/NVIDIA/framesight/pkg/serializer"
)

func observeCmd() *cli.Command {
	return &cli.Command{
		Name:  "observe",
		Usage: "Run a synthetic frame loop and capture periodic snapshots",
		Description: `Drives the snapshot pipeline with a synthetic frame loop: each tick
updates the frame cursor, every --interval frames a snapshot is captured
and emitted through the level/sampling policy. Final stats and the last
snapshot are written to --output when the loop ends.

With --metrics-addr set, a Prometheus /metrics endpoint is served for
the duration of the run.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "frames",
				Usage: "number of frames to run",
				Value: 300,
			},
			&cli.IntFlag{
				Name:  "fps",
				Usage: "target tick rate",
				Value: 60,
			},
			&cli.IntFlag{
				Name:  "interval",
				Usage: "capture a snapshot every N frames",
				Value: 60,
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "address to serve Prometheus metrics on (e.g. :9090); empty disables",
			},
			outputFlag,
			formatFlag,
		},
		Action: runObserve,
	}
}

func runObserve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", outFormat)
	}

	emitter := emit.New(cfg.EmitterOptions()...)
	cctx := capture.NewContext(capture.WithReporter(func(code string, payload map[string]any) {
		emitter.Emit(level.Warn, code, payload)
	}))

	timing := providers.NewTiming()
	registerProviders(cctx, cfg, timing)

	g, gctx := errgroup.WithContext(ctx)

	// The metrics endpoint lives exactly as long as the frame loop.
	loopCtx, loopDone := context.WithCancel(gctx)
	defer loopDone()

	if addr := cmd.String("metrics-addr"); addr != "" {
		g.Go(func() error {
			return serveMetrics(loopCtx, addr)
		})
	}

	g.Go(func() error {
		defer loopDone()
		defer slog.Info("frame loop complete")
		return frameLoop(loopCtx, cmd, cctx, emitter, timing)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	// Final read: last snapshot plus pipeline stats.
	report := struct {
		Snapshot *capture.Snapshot    `json:"snapshot" yaml:"snapshot"`
		Stats    capture.ContextStats `json:"stats" yaml:"stats"`
	}{
		Snapshot: cctx.CaptureSnapshot(false),
		Stats:    cctx.Stats(),
	}

	w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer w.Close()
	return w.Serialize(ctx, report)
}

// frameLoop plays the role of the external game loop driver: one
// UpdateFrame per tick, snapshot requests strictly after it.
func frameLoop(ctx context.Context, cmd *cli.Command, cctx *capture.Context, emitter *emit.Emitter, timing *providers.Timing) error {
	frames := cmd.Int("frames")
	fps := cmd.Int("fps")
	interval := cmd.Int("interval")
	if fps < 1 {
		fps = 60
	}
	if interval < 1 {
		interval = 1
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for frame := int64(0); frame < int64(frames); frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			timing.Observe(dt)
			cctx.UpdateFrame(frame, dt)

			if frame%int64(interval) == 0 {
				snap := cctx.CaptureSnapshot(false)
				emitter.Emit(level.Info, "frame_snapshot", map[string]any{
					"frame": snap.Frame,
					"fps":   snap.Performance.FPS,
					"units": len(snap.Units),
				})
			}
		}
	}
	return nil
}

func registerProviders(cctx *capture.Context, cfg *config.Config, timing *providers.Timing) {
	disabled := make(map[string]bool, len(cfg.DisabledProviders))
	for _, n := range cfg.DisabledProviders {
		disabled[n] = true
	}

	for _, p := range []capture.Provider{
		providers.NewRuntime(),
		providers.NewProcess(),
		timing,
	} {
		u := capture.NewUnit(p)
		if disabled[p.Name()] {
			u.Disable()
		}
		cctx.Register(u)
	}
}

// serveMetrics runs a Prometheus endpoint until ctx is canceled.
func serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
