package model

import (
	"errors"
	"fmt"
)

// ErrSingularity marks a computation that cannot produce a meaningful angle.
var ErrSingularity = errors.New("computation singularity")

// InputError reports a malformed or missing birth input field.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ComputationError reports a numerically degenerate step. It unwraps to ErrSingularity.
type ComputationError struct {
	Op     string
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrSingularity, e.Reason)
}

func (e *ComputationError) Unwrap() error { return ErrSingularity }

// Warning is non-fatal metadata attached to a chart.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WarningPrecisionRange flags dates outside the validated polynomial range.
const WarningPrecisionRange = "PRECISION_RANGE"
