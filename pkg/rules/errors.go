package rules

import "errors"

// Configuration errors. They mark a malformed rule set or a misuse of the
// engine, never a failed check; failed checks are reported inside a Result.
var (
	// ErrMissingFields is returned when a rule set has a nil Fields slice.
	// An empty (but non-nil) slice is valid and means "all input keys".
	ErrMissingFields = errors.New("rule set must declare a fields list")

	// ErrUnevenPairs is returned when a pattern/action list has odd length.
	ErrUnevenPairs = errors.New("pattern/action list must have even length")

	// ErrInvalidPattern is returned for an unsupported pattern shape.
	ErrInvalidPattern = errors.New("unsupported pattern type")

	// ErrInvalidAction is returned when an action is neither a routine nor a chain.
	ErrInvalidAction = errors.New("action must be a routine or a chain")

	// ErrUnknownFilter is returned when a named filter cannot be resolved.
	ErrUnknownFilter = errors.New("unknown named filter")

	// ErrUnknownField is returned by Result accessors for field names
	// outside the declared field set.
	ErrUnknownField = errors.New("field not declared in rule set")
)
