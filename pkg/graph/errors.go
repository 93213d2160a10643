package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrMalformedGraph   = errors.New("malformed graph")
	ErrEmptyGraph       = errors.New("graph has no vertices")
	ErrNegativeWeight   = errors.New("negative edge weight")
	ErrNonFiniteWeight  = errors.New("edge weight is not finite")
	ErrVertexOutOfRange = errors.New("vertex id out of range")
)

// MalformedError provides structured error information for graph construction failures.
type MalformedError struct {
	Op     string  // Operation that failed (e.g., "AddEdge", "Build")
	U, V   int     // Edge endpoints (if applicable)
	Weight float64 // Edge weight (if applicable)
	Cause  error   // Underlying error
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	if e.Cause == ErrNegativeWeight || e.Cause == ErrNonFiniteWeight {
		return fmt.Sprintf("%s edge (%d,%d) weight %g: %v", e.Op, e.U, e.V, e.Weight, e.Cause)
	}
	return fmt.Sprintf("%s edge (%d,%d): %v", e.Op, e.U, e.V, e.Cause)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *MalformedError) Unwrap() error {
	return e.Cause
}

// Is reports whether the error matches the generic malformed-graph sentinel
// in addition to its specific cause.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedGraph || target == e.Cause
}
