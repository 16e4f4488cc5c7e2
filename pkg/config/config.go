// Package config provides TOML-based configuration for charlotte.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete charlotte configuration.
type Config struct {
	Theme  ThemeConfig  `toml:"theme"`
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
}

// ThemeConfig selects the active theme and the lightness of derived shades.
type ThemeConfig struct {
	Name string `toml:"name" validate:"required"`
	// Files are extra TOML theme files registered at startup.
	Files             []string `toml:"files"`
	HoverLightness    float64  `toml:"hover_lightness" validate:"gte=0,lte=1"`
	DisabledLightness float64  `toml:"disabled_lightness" validate:"gte=0,lte=1"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=console json"`
}

// OutputConfig holds CLI output defaults.
type OutputConfig struct {
	Format string `toml:"format" validate:"oneof=json yaml text"`
	Color  string `toml:"color" validate:"oneof=auto always never"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance reports fields by their TOML key.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks every enumerated field and lightness range. The error
// names the first offending key, e.g. "output.color".
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	fe := ves[0]
	return fmt.Errorf("%w: %s = %v, %s", ErrInvalidConfig, keyPath(fe), fe.Value(), describe(fe))
}

// keyPath drops the root struct name from the namespace.
func keyPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "oneof":
		return fmt.Sprintf("want one of [%s]", fe.Param())
	case "gte", "lte":
		return "want a value in [0, 1]"
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}
