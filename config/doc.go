// Package config loads lvtopo run configuration from YAML.
//
// Load and Parse start from Default, overlay the document (unknown keys are
// rejected), apply LVTOPO_* environment overrides and validate the result
// with struct tags plus cross-field checks. Every failure wraps
// ErrInvalidConfig.
//
// A Config converts into the option types of the packages it drives:
// RadiusOptions, PipelineParams, Padding and Logger.
package config
