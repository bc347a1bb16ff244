// Package lvtopo is a toolkit for topological analysis of point clouds and
// scalar series: bounded-degree Vietoris–Rips complexes, approximate and
// intersection homology ranks, a hybrid filtration over smooth, non-smooth
// and singular regions, H0 persistence and weighted bottleneck comparison of
// persistence diagrams.
//
// Packages, leaf first:
//
//	cloud/       — point clouds, distance matrices, delay embedding, scalar fields
//	builder/     — deterministic synthetic clouds (frameworks, gasket, umbrella) and series
//	radius/      — k-NN and density radius selection
//	simplex/     — simplices, complexes, Vietoris–Rips up to triangles
//	homology/    — boundary records, SVD rank estimation, strata and perversity
//	classify/    — Morse-style and curvature-weighted region classifiers
//	hybrid/      — hybrid filtration composer (a multiset with transition entries)
//	diagram/     — persistence pairs, filtering, lifespan summaries, transitions
//	persistence/ — persistence-engine interface and a Kruskal H0 engine
//	assignment/  — Hungarian square assignment
//	bottleneck/  — weighted bottleneck distance
//	pipeline/    — bounded concurrent analysis of many units, with metrics
//	config/      — YAML configuration
//	cmd/lvtopo/  — command-line front end
//
// Every component takes an injected *slog.Logger and discards logs by
// default. Errors are package sentinels matched with errors.Is.
package lvtopo
