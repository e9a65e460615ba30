package biodrying

import (
	"errors"
	"fmt"
)

// ErrNoSubstrates is reported when a run or a configuration has an empty
// substrate list.
var ErrNoSubstrates = errors.New("biodrying: no substrates configured")

// ConfigErrorKind classifies a rejected configuration field.
type ConfigErrorKind int

const (
	MissingSubstrates ConfigErrorKind = iota + 1
	InvalidRange
	NonNumericField
)

// String returns the name of the error kind.
func (k ConfigErrorKind) String() string {
	switch k {
	case MissingSubstrates:
		return "missing-substrates"
	case InvalidRange:
		return "invalid-range"
	case NonNumericField:
		return "non-numeric-field"
	default:
		return fmt.Sprintf("ConfigErrorKind(%d)", int(k))
	}
}

// ConfigError describes a configuration field that could not be accepted.
type ConfigError struct {
	Kind  ConfigErrorKind
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	if e.Kind == MissingSubstrates {
		return ErrNoSubstrates.Error()
	}
	return fmt.Sprintf("biodrying: %s: field %q: %v", e.Kind, e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrNoSubstrates for the missing-substrates kind.
func (e *ConfigError) Unwrap() error {
	if e.Kind == MissingSubstrates {
		return ErrNoSubstrates
	}
	return nil
}

// SimulationError reports a run that stopped before reaching the last step.
type SimulationError struct {
	Step int
	Err  error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("biodrying: simulation stopped at step %d: %v", e.Step, e.Err)
}

func (e *SimulationError) Unwrap() error {
	return e.Err
}
