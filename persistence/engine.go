// SPDX-License-Identifier: MIT
// Package: lvtopo/persistence
//
// engine.go — Engine interface and adapters.

package persistence

import (
	"context"

	"github.com/katalvlaran/lvtopo/cloud"
	"github.com/katalvlaran/lvtopo/diagram"
)

// Engine computes persistence diagrams of a point cloud. The result is
// indexed by homological dimension.
type Engine interface {
	Diagrams(ctx context.Context, pc *cloud.PointCloud) ([]diagram.Diagram, error)
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(ctx context.Context, pc *cloud.PointCloud) ([]diagram.Diagram, error)

// Diagrams calls f.
func (f EngineFunc) Diagrams(ctx context.Context, pc *cloud.PointCloud) ([]diagram.Diagram, error) {
	return f(ctx, pc)
}

// Dimension returns ds[dim], or nil when the engine produced fewer dimensions.
func Dimension(ds []diagram.Diagram, dim int) diagram.Diagram {
	if dim < 0 || dim >= len(ds) {
		return nil
	}
	return ds[dim]
}
