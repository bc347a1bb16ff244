// SPDX-License-Identifier: MIT
// Package: lvtopo/cmd/lvtopo
//
// output.go — text and JSON rendering of reports and distance matrices.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvtopo/diagram"
	"github.com/katalvlaran/lvtopo/pipeline"
)

// reportView is the JSON shape of a pipeline.Report. Diagrams are reduced to
// their summaries since essential pairs have no JSON encoding.
type reportView struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Radius            float64           `json:"radius"`
	Built             bool              `json:"built"`
	Simplices         int               `json:"simplices"`
	Ranks             []int             `json:"ranks"`
	IntersectionRanks []int             `json:"intersection_ranks"`
	Summaries         []diagram.Summary `json:"summaries"`
	Transitions       []int             `json:"transitions"`
	Hybrid            map[string]int    `json:"hybrid,omitempty"`
	ElapsedMS         float64           `json:"elapsed_ms"`
	Error             string            `json:"error,omitempty"`
}

func viewOf(r pipeline.Report) reportView {
	v := reportView{
		ID:                r.ID.String(),
		Name:              r.Name,
		Radius:            r.Radius,
		Built:             r.Built,
		Simplices:         r.Simplices,
		Ranks:             r.Ranks,
		IntersectionRanks: r.IntersectionRanks,
		Summaries:         r.Summaries,
		ElapsedMS:         float64(r.Elapsed.Microseconds()) / 1000,
	}
	for _, ts := range r.Transitions {
		v.Transitions = append(v.Transitions, len(ts))
	}
	if r.Hybrid != nil {
		v.Hybrid = make(map[string]int)
		for region, n := range r.Hybrid.Filtration.Counts() {
			v.Hybrid[region.String()] = n
		}
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	return v
}

func writeReports(w io.Writer, reports []pipeline.Report, asJSON bool) error {
	if asJSON {
		views := make([]reportView, len(reports))
		for i, r := range reports {
			views[i] = viewOf(r)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "UNIT\tRADIUS\tSIMPLICES\tRANKS\tIH RANKS\tH0 PAIRS\tH0 MEAN\tH0 MAX\tPEAKS\tSTATUS")
	for _, r := range reports {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		var s diagram.Summary
		peaks := 0
		if len(r.Summaries) > 0 {
			s = r.Summaries[0]
			peaks = len(r.Transitions[0])
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%d\t%v\t%v\t%d+%d\t%.4f\t%.4f\t%d\t%s\n",
			r.Name, r.Radius, r.Simplices, r.Ranks, r.IntersectionRanks,
			s.Count, s.Essential, s.Mean, s.Max, peaks, status)
	}
	return tw.Flush()
}

func writeMatrix(w io.Writer, names []string, m *mat.SymDense, asJSON bool) error {
	n := len(names)
	if asJSON {
		rows := make([][]*float64, n)
		for i := range rows {
			rows[i] = make([]*float64, n)
			for j := range rows[i] {
				if v := m.At(i, j); !math.IsInf(v, 0) {
					rows[i][j] = &v
				}
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Units     []string     `json:"units"`
			Distances [][]*float64 `json:"distances"`
		}{names, rows})
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "\t"+strings.Join(names, "\t")+"\t")
	for i := 0; i < n; i++ {
		fmt.Fprint(tw, names[i], "\t")
		for j := 0; j < n; j++ {
			fmt.Fprintf(tw, "%.4f\t", m.At(i, j))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
