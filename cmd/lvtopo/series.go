// SPDX-License-Identifier: MIT
// Package: lvtopo/cmd/lvtopo
//
// series.go — the series command and CSV column reading.

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/pipeline"
)

var errNoSeries = errors.New("series: no input")

type seriesFlags struct {
	file      string
	column    int
	synthetic string
	length    int
	delay     int
	dim       int
}

func newSeriesCommand(a *app) *cobra.Command {
	var f seriesFlags
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Analyse a delay-embedded scalar series",
		Long: `Read one numeric CSV column (a header row is skipped), or synthesise a
chirp or GBM close-price series, delay-embed and normalise it, then run
the analysis with the hybrid filtration weighted by the raw series.

Examples:
  lvtopo series --file spx.csv --column 4
  lvtopo series --synthetic prices --length 500 --dim 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("delay") {
				a.cfg.Embedding.Delay = f.delay
			}
			if cmd.Flags().Changed("dim") {
				a.cfg.Embedding.Dim = f.dim
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			name, series, err := loadSeries(f, a.cfg.Synthetic.Seed)
			if err != nil {
				return err
			}
			u, err := seriesUnit(name, series, a.cfg, a.logger)
			if err != nil {
				return err
			}
			reports, err := a.runner().Run(cmd.Context(), []pipeline.Unit{u})
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), reports, a.jsonOut)
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "CSV file to read")
	cmd.Flags().IntVarP(&f.column, "column", "c", 0, "zero-based CSV column")
	cmd.Flags().StringVar(&f.synthetic, "synthetic", "", "generate the series instead: chirp or prices")
	cmd.Flags().IntVar(&f.length, "length", 256, "synthetic series length")
	cmd.Flags().IntVar(&f.delay, "delay", 1, "embedding delay (overrides config)")
	cmd.Flags().IntVar(&f.dim, "dim", 3, "embedding dimension (overrides config)")
	cmd.MarkFlagsMutuallyExclusive("file", "synthetic")
	return cmd
}

func loadSeries(f seriesFlags, seed int64) (string, []float64, error) {
	switch {
	case f.file != "":
		fh, err := os.Open(f.file)
		if err != nil {
			return "", nil, err
		}
		defer fh.Close()
		s, err := readColumn(fh, f.column)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", f.file, err)
		}
		return strings.TrimSuffix(filepath.Base(f.file), filepath.Ext(f.file)), s, nil

	case f.synthetic == "chirp":
		s, err := builder.BuildChirp(f.length, seed)
		return "chirp", s, err

	case f.synthetic == "prices":
		p, err := builder.BuildPriceSeries(f.length, seed)
		return "prices", p.Close, err

	case f.synthetic != "":
		return "", nil, fmt.Errorf("series: unknown synthetic kind %q", f.synthetic)
	}
	return "", nil, fmt.Errorf("series: pass --file or --synthetic: %w", errNoSeries)
}

// readColumn parses column col of every record. A non-numeric first record
// is taken as a header; later non-numeric cells are errors.
func readColumn(r io.Reader, col int) ([]float64, error) {
	if col < 0 {
		return nil, fmt.Errorf("column %d: must be non-negative", col)
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []float64
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if col >= len(rec) {
			return nil, fmt.Errorf("line %d: column %d out of range (%d fields)", line, col, len(rec))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errNoSeries
	}
	return out, nil
}
