package calculator

import (
	"strconv"
	"strings"

	"go-chi-calculator/internal/programmer"
)

// IntOperation is a programmer-mode operation on 64-bit integers. Suffix is
// appended to the result in the history, e.g. " bits set".
type IntOperation struct {
	Name     string
	Label    string
	Params   []string
	Template string
	Suffix   string
	Fn       func(args []int64) (int64, error)
}

// Describe renders a call of op with args, e.g. "12 AND 10".
func (op IntOperation) Describe(args []int64) string {
	pairs := make([]string, 0, 2*len(op.Params))
	for i, p := range op.Params {
		if i < len(args) {
			pairs = append(pairs, "{"+p+"}", strconv.FormatInt(args[i], 10))
		}
	}
	return strings.NewReplacer(pairs...).Replace(op.Template)
}

func intBinary(fn func(a, b int64) int64) func([]int64) (int64, error) {
	return func(args []int64) (int64, error) { return fn(args[0], args[1]), nil }
}

func shift(fn func(int64, int) (int64, error)) func([]int64) (int64, error) {
	return func(args []int64) (int64, error) { return fn(args[0], int(args[1])) }
}

var intRegistry = []IntOperation{
	{Name: "and", Label: "Bitwise AND", Params: []string{"a", "b"}, Template: "{a} AND {b}",
		Fn: intBinary(programmer.BitwiseAnd)},
	{Name: "or", Label: "Bitwise OR", Params: []string{"a", "b"}, Template: "{a} OR {b}",
		Fn: intBinary(programmer.BitwiseOr)},
	{Name: "xor", Label: "Bitwise XOR", Params: []string{"a", "b"}, Template: "{a} XOR {b}",
		Fn: intBinary(programmer.BitwiseXor)},
	{Name: "not", Label: "Bitwise NOT", Params: []string{"a"}, Template: "NOT {a}",
		Fn: func(args []int64) (int64, error) { return programmer.BitwiseNot(args[0]), nil }},
	{Name: "shl", Label: "Left shift", Params: []string{"n", "positions"}, Template: "{n} << {positions}",
		Fn: shift(programmer.LeftShift)},
	{Name: "shr", Label: "Right shift", Params: []string{"n", "positions"}, Template: "{n} >> {positions}",
		Fn: shift(programmer.RightShift)},
	{Name: "popcount", Label: "Pop count", Params: []string{"n"}, Template: "popcount({n})", Suffix: " bits set",
		Fn: func(args []int64) (int64, error) { return int64(programmer.PopCount(args[0])), nil }},
}

var intByName = func() map[string]IntOperation {
	m := make(map[string]IntOperation, len(intRegistry))
	for _, op := range intRegistry {
		m[op.Name] = op
	}
	return m
}()

// LookupInt returns the programmer operation registered under name.
func LookupInt(name string) (IntOperation, bool) {
	op, ok := intByName[name]
	return op, ok
}

// IntOperations returns the programmer operations in menu order.
func IntOperations() []IntOperation {
	out := make([]IntOperation, len(intRegistry))
	copy(out, intRegistry)
	return out
}
