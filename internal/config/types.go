// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// MinVerbosity is the quietest level: result lines and warnings only.
	MinVerbosity Verbosity = 0
	// MaxVerbosity also prints raw decoder messages for invalid files.
	MaxVerbosity Verbosity = 3
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidVerbosity is returned when a Verbosity value is out of range.
	ErrInvalidVerbosity = errors.New("invalid verbosity")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// Verbosity is the configured output detail level.
	Verbosity int

	// InvalidVerbosityError is returned when a Verbosity is outside
	// [MinVerbosity, MaxVerbosity].
	InvalidVerbosityError struct {
		Value Verbosity
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Verbosity is the base verbosity level
		Verbosity Verbosity `json:"verbosity" mapstructure:"verbosity"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Log configures diagnostic logging
		Log LogConfig `json:"log" mapstructure:"log"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Explain renders issue guidance after fatal errors
		Explain bool `json:"explain" mapstructure:"explain"`
	}

	// LogConfig configures diagnostic logging.
	LogConfig struct {
		// Timestamps adds the time of day to log lines
		Timestamps bool `json:"timestamps" mapstructure:"timestamps"`
	}
)

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Verbosity.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// IsValid returns whether the Verbosity is within range.
func (v Verbosity) IsValid() (bool, []error) {
	if v < MinVerbosity || v > MaxVerbosity {
		return false, []error{&InvalidVerbosityError{Value: v}}
	}
	return true, nil
}

// Add returns v raised by n, saturating at MaxVerbosity.
func (v Verbosity) Add(n int) Verbosity {
	sum := v + Verbosity(n)
	if sum > MaxVerbosity {
		return MaxVerbosity
	}
	if sum < MinVerbosity {
		return MinVerbosity
	}
	return sum
}

// Error implements the error interface for InvalidVerbosityError.
func (e *InvalidVerbosityError) Error() string {
	return fmt.Sprintf("invalid verbosity %d (valid: %d-%d)", int(e.Value), MinVerbosity, MaxVerbosity)
}

// Unwrap returns ErrInvalidVerbosity for errors.Is() compatibility.
func (e *InvalidVerbosityError) Unwrap() error { return ErrInvalidVerbosity }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Verbosity: MinVerbosity,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Explain:     false,
		},
		Log: LogConfig{
			Timestamps: false,
		},
	}
}
