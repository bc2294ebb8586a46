package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned by Init when the configuration fails its
	// own Validate check.
	ErrInvalidConfig = errors.New("invalid indicator configuration")

	// ErrUnknownAttribute is wrapped by Set when the field name does not
	// exist on the configuration.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrInvalidAttributeValue is wrapped by Set when the value cannot be
	// parsed into the field's declared type.
	ErrInvalidAttributeValue = errors.New("invalid attribute value")
)

// UnknownAttributeError builds the diagnostic Set returns for a field name
// the configuration does not declare.
func UnknownAttributeError(name string) error {
	return fmt.Errorf("%w %q", ErrUnknownAttribute, name)
}

// InvalidAttributeValueError builds the diagnostic Set returns when a value
// fails to parse into the named field.
func InvalidAttributeValueError(name, value string, err error) error {
	return fmt.Errorf("%w %q for attribute %q: %v", ErrInvalidAttributeValue, value, name, err)
}

// IndicatorConfig is the immutable-parameters half of an indicator. A config
// is plain data: it can be inspected, validated, and mutated field-by-field
// until it is bound to a first bar via Init, after which the produced
// instance treats it as frozen.
type IndicatorConfig interface {
	// Validate reports whether the configuration satisfies its declared
	// invariants. Advisory only; it never mutates.
	Validate() bool

	// Set parses `value` into the named field. Unknown names and unparsable
	// values are reported through the returned error (ErrUnknownAttribute,
	// ErrInvalidAttributeValue) and leave the field unchanged; callers decide
	// whether to log-and-continue or fail hard.
	Set(name, value string) error

	// Size declares the fixed (value, signal) arity of every Result the
	// bound instance will emit.
	Size() (values, signals int)

	// Init binds the configuration to the first observed bar, seeding all
	// internal state from it so the first emission is already well-defined.
	// An invalid configuration is refused with ErrInvalidConfig.
	Init(candle OHLC) (IndicatorInstance, error)
}

// IndicatorInstance is the mutable per-stream half of an indicator. Bars
// must be fed in strictly increasing time order; the recurrences assume
// "previous" means chronologically previous.
type IndicatorInstance interface {
	// Config returns the bound configuration for inspection.
	Config() IndicatorConfig

	// Next consumes one bar and emits one Result whose arities match the
	// configuration's Size.
	Next(candle OHLC) IndicatorResult
}
