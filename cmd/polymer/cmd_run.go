package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/polymer/internal/logger"
	"github.com/katalvlaran/polymer/internal/metrics"
	"github.com/katalvlaran/polymer/runner"
	"github.com/katalvlaran/polymer/scan"
)

func newRunCmd(a *app) *cobra.Command {
	var serve bool
	cmd := &cobra.Command{
		Use:   "run [file|-] [solution...]",
		Short: "Run registered solutions with generator and runner timings",
		Long: `Run parses the input once per solution and reports the answer with
the time spent generating and running. Without solution names it runs the
names listed in the config, or every registered solution.

With metrics.push_url set, the run's metrics are pushed to that Pushgateway.
With --serve (or metrics.enabled), /metrics stays up on metrics.addr after
the run until the process is interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var names []string
			if len(args) > 1 {
				names = args[1:]
			} else {
				names = a.cfg.Runner.Solutions
			}

			serve = serve || a.cfg.Metrics.Enabled
			opts := []runner.Option{runner.WithLogger(logger.WithComponent("runner"))}
			var reg *prometheus.Registry
			if serve || a.cfg.Metrics.PushURL != "" {
				reg = prometheus.NewRegistry()
				opts = append(opts, runner.WithMetrics(metrics.New(reg)))
			}

			r := runner.New(runner.Polymer(scan.WithWorkers(a.cfg.Engine.Workers)), opts...)
			reports, runErr := r.RunAll(cmd.Context(), data, names...)
			out := cmd.OutOrStdout()
			for _, rep := range reports {
				fmt.Fprintf(out, "%s\n\n", rep)
			}

			if a.cfg.Metrics.PushURL != "" {
				if err := metrics.Push(cmd.Context(), a.cfg.Metrics.PushURL, a.cfg.Metrics.Job, reg); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}
			if serve {
				if err := serveUntilDone(cmd.Context(), a.cfg.Metrics.Addr, reg); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}
			return runErr
		},
	}
	cmd.Flags().BoolVar(&serve, "serve", false, "keep /metrics up after the run until interrupted")
	return cmd
}

// serveUntilDone exposes reg on addr until ctx is done.
func serveUntilDone(ctx context.Context, addr string, reg prometheus.Gatherer) error {
	bound, shutdown, err := metrics.StartServer(addr, reg)
	if err != nil {
		return err
	}
	logger.WithComponent("metrics").Info("serving metrics until interrupted", "addr", bound)
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return shutdown(shutdownCtx)
}
