// Package diagram models persistence diagrams and the light analysis done on
// them before comparison: lifespan filtering, summary statistics, and
// detection of topological transitions as prominent peaks in the lifespan
// sequence.
//
// A Pair is one (birth, death) interval. Death may be +Inf for an essential
// class that never dies; such pairs survive Filter, are excluded from
// Summarize, and never count as transitions.
//
// Diagrams are plain slices; functions here never mutate their input.
package diagram
