package calculator

import (
	"math"
	"sort"
	"strings"

	"go-chi-calculator/internal/operations"
	"go-chi-calculator/internal/result"
)

// Mode groups operations the way the console menus present them.
type Mode string

const (
	ModeBasic      Mode = "basic"
	ModeScientific Mode = "scientific"
	ModeProgrammer Mode = "programmer"
)

// Operation describes a floating-point operation: how to call it, how to
// describe a call in the history, and how to annotate an infinite result.
// Variadic operations take any number of arguments; Integer ones require
// whole numbers.
type Operation struct {
	Name     string
	Label    string
	Mode     Mode
	Params   []string
	Variadic bool
	Integer  bool
	Template string
	Fn       func(args []float64) float64
	Cause    func(args []float64, v float64) result.Cause
}

// Describe renders a call of op with args, e.g. "2 + 3".
func (op Operation) Describe(args []float64) string {
	if op.Variadic {
		return strings.ReplaceAll(op.Template, "{values}", result.List(args))
	}
	return result.Describe(op.Template, op.Params, args)
}

func unary(fn func(float64) float64) func([]float64) float64 {
	return func(args []float64) float64 { return fn(args[0]) }
}

func binary(fn func(float64, float64) float64) func([]float64) float64 {
	return func(args []float64) float64 { return fn(args[0], args[1]) }
}

// overflow annotates an infinite result computed from finite inputs.
func overflow(args []float64, v float64) result.Cause {
	if !math.IsInf(v, 0) {
		return result.None
	}
	for _, a := range args {
		if math.IsInf(a, 0) || math.IsNaN(a) {
			return result.None
		}
	}
	return result.Overflow
}

// divisionCause checks the divisor before anything else.
func divisionCause(args []float64, v float64) result.Cause {
	if args[1] == 0 {
		return result.DivisionByZero
	}
	return overflow(args, v)
}

var registry = []Operation{
	{Name: "add", Label: "Addition", Mode: ModeBasic, Params: []string{"a", "b"}, Template: "{a} + {b}",
		Fn: binary(operations.Addition), Cause: overflow},
	{Name: "subtract", Label: "Subtraction", Mode: ModeBasic, Params: []string{"a", "b"}, Template: "{a} - {b}",
		Fn: binary(operations.Subtraction), Cause: overflow},
	{Name: "multiply", Label: "Multiplication", Mode: ModeBasic, Params: []string{"a", "b"}, Template: "{a} * {b}",
		Fn: binary(operations.Multiplication), Cause: overflow},
	{Name: "divide", Label: "Division", Mode: ModeBasic, Params: []string{"a", "b"}, Template: "{a} / {b}",
		Fn: binary(operations.Division), Cause: divisionCause},
	{Name: "average", Label: "Average", Mode: ModeBasic, Params: []string{"a", "b", "c"}, Template: "({a} + {b} + {c}) / 3",
		Fn: func(args []float64) float64 { return operations.Average(args[0], args[1], args[2]) }, Cause: overflow},
	{Name: "mean", Label: "Mean", Mode: ModeBasic, Variadic: true, Template: "mean({values})",
		Fn: func(args []float64) float64 { return operations.Mean(args...) }, Cause: overflow},
	{Name: "sqrt", Label: "Square root", Mode: ModeBasic, Params: []string{"x"}, Template: "sqrt({x})",
		Fn: unary(operations.SquareRoot), Cause: overflow},
	{Name: "power", Label: "Exponentiation", Mode: ModeBasic, Params: []string{"base", "exponent"}, Template: "{base} ^ {exponent}",
		Fn: binary(operations.Exponentiation)},

	{Name: "sin", Label: "Sine", Mode: ModeScientific, Params: []string{"x"}, Template: "sin({x})",
		Fn: unary(operations.Sin)},
	{Name: "cos", Label: "Cosine", Mode: ModeScientific, Params: []string{"x"}, Template: "cos({x})",
		Fn: unary(operations.Cos)},
	{Name: "tan", Label: "Tangent", Mode: ModeScientific, Params: []string{"x"}, Template: "tan({x})",
		Fn: unary(operations.Tan)},
	{Name: "deg2rad", Label: "Degrees to radians", Mode: ModeScientific, Params: []string{"x"}, Template: "{x}° in radians",
		Fn: unary(operations.DegreesToRadians)},
	{Name: "rad2deg", Label: "Radians to degrees", Mode: ModeScientific, Params: []string{"x"}, Template: "{x} radians in degrees",
		Fn: unary(operations.RadiansToDegrees)},
	{Name: "ln", Label: "Natural logarithm", Mode: ModeScientific, Params: []string{"x"}, Template: "ln({x})",
		Fn: unary(operations.Ln)},
	{Name: "log10", Label: "Base-10 logarithm", Mode: ModeScientific, Params: []string{"x"}, Template: "log({x})",
		Fn: unary(operations.Log10)},
	{Name: "exp", Label: "Exponential", Mode: ModeScientific, Params: []string{"x"}, Template: "e^{x}",
		Fn: unary(operations.Exp)},
	{Name: "factorial", Label: "Factorial", Mode: ModeScientific, Params: []string{"n"}, Integer: true, Template: "{n}!",
		Fn: func(args []float64) float64 { return factorial(args[0]) }},
	{Name: "abs", Label: "Absolute value", Mode: ModeScientific, Params: []string{"x"}, Template: "|{x}|",
		Fn: unary(operations.Abs)},
}

// factorial maps an integral float onto operations.Factorial, saturating
// arguments too large for int; those overflow anyway.
func factorial(n float64) float64 {
	if n > math.MaxInt32 {
		return math.Inf(1)
	}
	return operations.Factorial(int(n))
}

var byName = func() map[string]Operation {
	m := make(map[string]Operation, len(registry))
	for _, op := range registry {
		m[op.Name] = op
	}
	return m
}()

// Lookup returns the floating-point operation registered under name.
func Lookup(name string) (Operation, bool) {
	op, ok := byName[name]
	return op, ok
}

// Operations returns the registered operations of one mode in menu order,
// or all of them when mode is empty.
func Operations(mode Mode) []Operation {
	out := make([]Operation, 0, len(registry))
	for _, op := range registry {
		if mode == "" || op.Mode == mode {
			out = append(out, op)
		}
	}
	return out
}

// Names lists every registered operation name in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName)+len(intByName))
	for name := range byName {
		names = append(names, name)
	}
	for name := range intByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
