package operations

import "math"

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Sin returns the sine of an angle in radians.
func Sin(angle float64) (result float64) {
	defer guard(&result)
	if !finite(angle) {
		return math.NaN()
	}
	return math.Sin(angle)
}

// Cos returns the cosine of an angle in radians.
func Cos(angle float64) (result float64) {
	defer guard(&result)
	if !finite(angle) {
		return math.NaN()
	}
	return math.Cos(angle)
}

// Tan returns the tangent of an angle in radians.
func Tan(angle float64) (result float64) {
	defer guard(&result)
	if !finite(angle) {
		return math.NaN()
	}
	return math.Tan(angle)
}

// Ln returns the natural logarithm of x.
func Ln(x float64) (result float64) {
	defer guard(&result)
	return logarithm(x, math.Log)
}

// Log10 returns the base-10 logarithm of x.
func Log10(x float64) (result float64) {
	defer guard(&result)
	return logarithm(x, math.Log10)
}

func logarithm(x float64, log func(float64) float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	}
	return log(x)
}

// Exp returns e raised to x.
func Exp(x float64) (result float64) {
	defer guard(&result)
	if math.IsNaN(x) {
		return math.NaN()
	}
	return math.Exp(x)
}

// DegreesToRadians converts an angle from degrees to radians.
func DegreesToRadians(degrees float64) (result float64) {
	defer guard(&result)
	if math.IsNaN(degrees) {
		return math.NaN()
	}
	return degrees * math.Pi / 180
}

// RadiansToDegrees converts an angle from radians to degrees.
func RadiansToDegrees(radians float64) (result float64) {
	defer guard(&result)
	if math.IsNaN(radians) {
		return math.NaN()
	}
	return radians * 180 / math.Pi
}

// Factorial returns n!. Negative n yields NaN; the product stops at +Inf as
// soon as it overflows, so every n past the overflow point is +Inf too.
func Factorial(n int) (result float64) {
	defer guard(&result)
	if n < 0 {
		return math.NaN()
	}
	result = 1
	for i := 2; i <= n; i++ {
		result *= float64(i)
		if math.IsInf(result, 1) {
			return math.Inf(1)
		}
	}
	return result
}

// Abs returns the absolute value of x.
func Abs(x float64) (result float64) {
	defer guard(&result)
	if math.IsNaN(x) {
		return math.NaN()
	}
	return math.Abs(x)
}
