// SPDX-License-Identifier: MIT
// Package: lvtopo/cmd/lvtopo
//
// main.go — entry point.

// Command lvtopo runs topological analyses over synthetic point clouds and
// scalar series.
//
//	lvtopo synth   --config run.yaml          # framework × complexity grid
//	lvtopo series  --file prices.csv -c 4     # delay-embedded series
//	lvtopo compare --config run.yaml          # pairwise bottleneck distances
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
