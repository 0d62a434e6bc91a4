package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Shape errors
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrShapeMismatch     = errors.New("shape mismatch")

	// Comparison errors
	ErrEmptyJoin = errors.New("no common outcome buckets across tables")

	// Input errors
	ErrEmptyBatch      = errors.New("empty observation batch")
	ErrInvalidInterval = errors.New("invalid response interval")
)

// Error constructors with context
func NewDimensionMismatch(what string, want, got int) error {
	return fmt.Errorf("%w: %s has length %d, want %d", ErrDimensionMismatch, what, got, want)
}

func NewShapeMismatch(what string, want, got int) error {
	return fmt.Errorf("%w: %s is %d, want %d", ErrShapeMismatch, what, got, want)
}

func NewEmptyJoinError(sources []string) error {
	return fmt.Errorf("%w: sources %v", ErrEmptyJoin, sources)
}

// Error checking helpers
func IsDimensionMismatch(err error) bool {
	return errors.Is(err, ErrDimensionMismatch)
}

func IsShapeMismatch(err error) bool {
	return errors.Is(err, ErrShapeMismatch)
}

func IsEmptyJoin(err error) bool {
	return errors.Is(err, ErrEmptyJoin)
}
