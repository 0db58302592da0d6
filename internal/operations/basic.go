// Package operations holds the pure floating-point functions behind every
// calculator mode. None of them return errors: mathematically undefined or
// overflowing inputs are reported through NaN and infinite results.
package operations

import "math"

// guard converts a panic inside an operation into NaN.
func guard(result *float64) {
	if recover() != nil {
		*result = math.NaN()
	}
}

func anyNaN(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}

// Addition returns a + b.
func Addition(a, b float64) (result float64) {
	defer guard(&result)
	if anyNaN(a, b) {
		return math.NaN()
	}
	return a + b
}

// Subtraction returns a - b.
func Subtraction(a, b float64) (result float64) {
	defer guard(&result)
	if anyNaN(a, b) {
		return math.NaN()
	}
	return a - b
}

// Multiplication returns a * b.
func Multiplication(a, b float64) (result float64) {
	defer guard(&result)
	if anyNaN(a, b) {
		return math.NaN()
	}
	return a * b
}

// Division returns a / b. A zero divisor produces a signed infinity
// (NaN for 0/0); callers that want to label the division by zero check the
// divisor themselves.
func Division(a, b float64) (result float64) {
	defer guard(&result)
	if anyNaN(a, b) {
		return math.NaN()
	}
	return a / b
}

// FourResults bundles the four basic operations applied to one pair.
type FourResults struct {
	Addition       float64 `json:"addition"`
	Subtraction    float64 `json:"subtraction"`
	Multiplication float64 `json:"multiplication"`
	Division       float64 `json:"division"`
}

// FourOperations applies addition, subtraction, multiplication and division
// to a and b.
func FourOperations(a, b float64) FourResults {
	return FourResults{
		Addition:       Addition(a, b),
		Subtraction:    Subtraction(a, b),
		Multiplication: Multiplication(a, b),
		Division:       Division(a, b),
	}
}
