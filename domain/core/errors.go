package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions. Every test constructor
// validates its inputs up front and returns one of these before any
// computation runs; there are no partial results.
var (
	// ErrInvalidParameter covers out-of-range or unrecognized scalar
	// parameters (probability above one, successes exceeding trials,
	// unknown alternative hypothesis tag).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrShapeMismatch covers vectors whose lengths must agree but do not
	// (paired samples, observed vs expected counts, group labels).
	ErrShapeMismatch = errors.New("vector shape mismatch")

	// ErrCardinality covers group-label vectors with more distinct labels
	// than the test supports.
	ErrCardinality = errors.New("group cardinality exceeds test arity")

	// ErrAmbiguousInput covers conflicting input combinations, such as a
	// group vector supplied alongside multiple sample vectors.
	ErrAmbiguousInput = errors.New("ambiguous input combination")

	// ErrEmptyVector is returned for degenerate empty observation vectors.
	ErrEmptyVector = errors.New("empty observation vector")
)

// Error constructors with context
func NewInvalidParameterError(param string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, param, reason)
}

func NewShapeMismatchError(what string, n1, n2 int) error {
	return fmt.Errorf("%w: %s (%d vs %d)", ErrShapeMismatch, what, n1, n2)
}

func NewCardinalityError(got, max int) error {
	return fmt.Errorf("%w: got %d distinct labels, at most %d supported", ErrCardinality, got, max)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrShapeMismatch) ||
		errors.Is(err, ErrCardinality) ||
		errors.Is(err, ErrAmbiguousInput) ||
		errors.Is(err, ErrEmptyVector)
}
