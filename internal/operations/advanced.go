package operations

import "math"

// Average returns the arithmetic mean of three values.
func Average(a, b, c float64) (result float64) {
	defer guard(&result)
	if anyNaN(a, b, c) {
		return math.NaN()
	}
	return (a + b + c) / 3
}

// Mean returns the arithmetic mean of xs, or 0 when xs is empty.
func Mean(xs ...float64) (result float64) {
	defer guard(&result)
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		if math.IsNaN(x) {
			return math.NaN()
		}
		sum += x
	}
	return sum / float64(len(xs))
}

// SquareRoot returns the square root of x, NaN for negative input.
func SquareRoot(x float64) (result float64) {
	defer guard(&result)
	switch {
	case math.IsNaN(x), x < 0:
		return math.NaN()
	case math.IsInf(x, 1):
		return math.Inf(1)
	}
	return math.Sqrt(x)
}

// Exponentiation returns base raised to exp. 0^0 is 1 and 0 raised to a
// negative power is +Inf regardless of the sign of zero.
func Exponentiation(base, exp float64) (result float64) {
	defer guard(&result)
	if anyNaN(base, exp) {
		return math.NaN()
	}
	if base == 0 {
		switch {
		case exp < 0:
			return math.Inf(1)
		case exp == 0:
			return 1
		}
	}
	return math.Pow(base, exp)
}
