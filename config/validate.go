// SPDX-License-Identifier: MIT
// Package: lvtopo/config
//
// validate.go — struct-tag validation plus cross-field checks.

package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvtopo/bottleneck"
	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/radius"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the shared validator with the lvtopo tags
// registered: radius_method and framework.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("radius_method", func(fl validator.FieldLevel) bool {
			_, err := radius.ParseMethod(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("framework", func(fl validator.FieldLevel) bool {
			_, err := builder.ParseFramework(fl.Field().String())
			return err == nil
		})
		validate = v
	})
	return validate
}

// Validate checks field ranges and cross-field constraints.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config: nil: %w", ErrInvalidConfig)
	}
	if err := validatorInstance().Struct(c); err != nil {
		return fmt.Errorf("config: %w", errors.Join(ErrInvalidConfig, formatValidationError(err)))
	}

	if c.hasFramework(builder.Fractal, builder.Hybrid) {
		for _, k := range c.Synthetic.Complexities {
			if k > builder.MaxRefineDepth {
				return fmt.Errorf("config: synthetic complexity %d exceeds refinement depth %d: %w",
					k, builder.MaxRefineDepth, ErrInvalidConfig)
			}
		}
	}
	if _, err := bottleneck.ParsePadding(c.Bottleneck.Padding); err != nil {
		return fmt.Errorf("config: %w", errors.Join(ErrInvalidConfig, err))
	}
	return nil
}

func (c *Config) hasFramework(fs ...builder.Framework) bool {
	for _, name := range c.Synthetic.Frameworks {
		for _, f := range fs {
			if name == string(f) {
				return true
			}
		}
	}
	return false
}

// formatValidationError reports the first failing field in a readable form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "min", "gte":
		return fmt.Errorf("%s: must be at least %s", field, e.Param())
	case "max", "lte":
		return fmt.Errorf("%s: must not exceed %s", field, e.Param())
	case "gt":
		return fmt.Errorf("%s: must be greater than %s", field, e.Param())
	case "lt":
		return fmt.Errorf("%s: must be less than %s", field, e.Param())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got %v", field, e.Param(), e.Value())
	default:
		return fmt.Errorf("%s: validation failed (%s), got %v", field, e.Tag(), e.Value())
	}
}
