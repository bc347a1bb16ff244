// SPDX-License-Identifier: MIT
// Package: lvtopo/pipeline
//
// types.go — units, parameters, reports and sentinel errors.

package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvtopo/cloud"
	"github.com/katalvlaran/lvtopo/diagram"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/hybrid"
	"github.com/katalvlaran/lvtopo/radius"
)

var (
	// ErrBadParams indicates invalid analysis parameters.
	ErrBadParams = errors.New("pipeline: invalid parameters")

	// ErrNoDiagram indicates a unit without a diagram in the requested dimension.
	ErrNoDiagram = errors.New("pipeline: unit has no diagram for dimension")
)

// Unit is one independent analysis input.
type Unit struct {
	Name   string
	Cloud  *cloud.PointCloud
	Strata homology.Strata
	// Hybrid, when set, is composed alongside the main analysis.
	Hybrid *hybrid.Input
}

// Params are the per-unit analysis settings.
type Params struct {
	Radius     radius.Options
	Degree     int
	Perversity int
	// Threshold is the minimum lifespan kept in diagrams.
	Threshold float64
	// Prominence is the transition peak prominence.
	Prominence float64
}

// DefaultParams returns knn radius selection, degree 3, perversity 1 and
// the diagram package defaults.
func DefaultParams() Params {
	return Params{
		Radius:     radius.DefaultOptions(),
		Degree:     3,
		Perversity: 1,
		Threshold:  diagram.DefaultThreshold,
		Prominence: diagram.DefaultProminence,
	}
}

func (p Params) validate() error {
	if _, err := radius.ParseMethod(string(p.Radius.Method)); err != nil {
		return err
	}
	switch {
	case p.Radius.Neighbors < 1, !(p.Radius.ScaleFactor > 0):
		return fmt.Errorf("radius options %+v: %w", p.Radius, ErrBadParams)
	case p.Degree < 0:
		return fmt.Errorf("degree %d: %w", p.Degree, homology.ErrNegativeDegree)
	case p.Perversity < 0:
		return fmt.Errorf("perversity %d: %w", p.Perversity, homology.ErrNegativePerversity)
	case p.Threshold < 0, p.Prominence < 0:
		return fmt.Errorf("threshold %v, prominence %v: %w", p.Threshold, p.Prominence, ErrBadParams)
	}
	return nil
}

// Report is the outcome of one unit.
type Report struct {
	ID   uuid.UUID
	Name string

	Radius    float64
	Built     bool
	Simplices int

	Ranks             []int
	IntersectionRanks []int

	// Diagrams are lifespan-filtered, indexed by dimension.
	Diagrams    []diagram.Diagram
	Summaries   []diagram.Summary
	Transitions [][]diagram.Transition

	Hybrid *hybrid.Result

	Elapsed time.Duration
	// Err is set when the unit failed; fields after the failing stage are
	// left zero.
	Err error
}

// OK reports whether the unit completed.
func (r Report) OK() bool { return r.Err == nil }
