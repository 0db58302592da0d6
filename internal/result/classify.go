// Package result classifies computed values and renders them for display
// and for the calculation history.
package result

import (
	"math"
	"strconv"
)

// Class is the special-value category of a result.
type Class int

const (
	Finite Class = iota
	PositiveInfinity
	NegativeInfinity
	NaN
)

func (c Class) String() string {
	switch c {
	case Finite:
		return "finite"
	case PositiveInfinity:
		return "+inf"
	case NegativeInfinity:
		return "-inf"
	case NaN:
		return "nan"
	}
	return "unknown"
}

// Classify reports which category v falls into. NaN is tested first and
// never by comparison.
func Classify(v float64) Class {
	switch {
	case math.IsNaN(v):
		return NaN
	case math.IsInf(v, 1):
		return PositiveInfinity
	case math.IsInf(v, -1):
		return NegativeInfinity
	}
	return Finite
}

// Cause annotates why a result became infinite.
type Cause int

const (
	// None leaves an infinite result unannotated, as for mathematical
	// singularities like ln(0) or a factorial past the float64 range.
	None Cause = iota
	Overflow
	DivisionByZero
)

func (c Cause) note() string {
	switch c {
	case Overflow:
		return " (overflow)"
	case DivisionByZero:
		return " (division by zero)"
	}
	return ""
}

const invalidOperation = "NaN (invalid operation)"

// Display renders v for the user, annotating infinities with cause.
func Display(v float64, cause Cause) string {
	switch Classify(v) {
	case NaN:
		return invalidOperation
	case PositiveInfinity:
		return "Infinity" + cause.note()
	case NegativeInfinity:
		return "-Infinity" + cause.note()
	}
	return FormatNumber(v)
}

// FormatNumber renders a finite value in its shortest round-trip form,
// switching to exponent notation outside [1e-5, 1e15).
func FormatNumber(v float64) string {
	switch Classify(v) {
	case NaN:
		return "NaN"
	case PositiveInfinity:
		return "Infinity"
	case NegativeInfinity:
		return "-Infinity"
	}
	if abs := math.Abs(v); abs == 0 || (abs >= 1e-5 && abs < 1e15) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
