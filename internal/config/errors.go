package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidValue indicates a raw value rejected by an option's type
	// or constraint. Recoverable: the prior value stays in place.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidDefault indicates an option declared with a default that
	// fails its own validation. A startup-time programming error.
	ErrInvalidDefault = errors.New("invalid default value")

	// ErrDuplicateSection indicates the section name is already taken.
	ErrDuplicateSection = errors.New("duplicate section")

	// ErrDuplicateOption indicates the option name is already taken
	// within its section.
	ErrDuplicateOption = errors.New("duplicate option")

	// ErrUnknownOption indicates a lookup for an option that was never
	// declared.
	ErrUnknownOption = errors.New("unknown option")

	// ErrNotFound indicates the configuration file does not exist.
	ErrNotFound = errors.New("config file not found")
)

// InvalidValueError reports the option and raw text behind an
// ErrInvalidValue failure.
type InvalidValueError struct {
	// Option is the fully qualified option name (section.option).
	Option string
	// Raw is the rejected input.
	Raw string
	// Reason describes why the value was rejected.
	Reason string
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option %s: %s", e.Raw, e.Option, e.Reason)
}

// Is matches InvalidValueError against ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
