// SPDX-License-Identifier: MIT
// Package: lvtopo/cmd/lvtopo
//
// root.go — root command, shared configuration and metrics endpoint.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/config"
	"github.com/katalvlaran/lvtopo/pipeline"
)

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath  string
	metricsAddr string
	jsonOut     bool

	cfg     *config.Config
	logger  *slog.Logger
	metrics *pipeline.Metrics
	server  *http.Server
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvtopo",
		Short: "Topological analysis of point clouds and series",
		Long: `lvtopo builds Vietoris-Rips complexes, estimates (intersection) homology
ranks, computes H0 persistence and compares diagrams with the weighted
bottleneck distance.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.shutdown(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file (defaults when empty)")
	root.PersistentFlags().StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on host:port")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "write results as JSON")

	root.AddCommand(newSynthCommand(a), newSeriesCommand(a), newCompareCommand(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.Parse(nil)
	}
	if err != nil {
		return err
	}
	if a.metricsAddr != "" {
		a.cfg.Pipeline.MetricsAddr = a.metricsAddr
	}
	a.logger = a.cfg.Logger(cmd.ErrOrStderr())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	a.metrics = pipeline.NewMetrics(reg)

	if addr := a.cfg.Pipeline.MetricsAddr; addr != "" {
		a.server = &http.Server{
			Addr:              addr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("metrics server", "addr", addr, "err", err)
			}
		}()
		a.logger.Info("serving metrics", "addr", addr)
	}
	return nil
}

func (a *app) shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	return a.server.Shutdown(ctx)
}

// runner builds a pipeline runner from the loaded configuration.
func (a *app) runner() *pipeline.Runner {
	opts := append(a.cfg.RunnerOptions(),
		pipeline.WithLogger(a.logger),
		pipeline.WithMetrics(a.metrics),
	)
	return pipeline.NewRunner(opts...)
}
