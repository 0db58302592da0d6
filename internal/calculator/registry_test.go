package calculator

import (
	"math"
	"testing"

	"go-chi-calculator/internal/result"
)

func TestRegistryNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range Operations("") {
		if seen[op.Name] {
			t.Fatalf("duplicate operation %q", op.Name)
		}
		seen[op.Name] = true
	}
	for _, op := range IntOperations() {
		if seen[op.Name] {
			t.Fatalf("duplicate operation %q", op.Name)
		}
		seen[op.Name] = true
	}
	if len(seen) != len(Names()) {
		t.Fatalf("expected %d names, got %d", len(seen), len(Names()))
	}
}

func TestOperationsFiltersByMode(t *testing.T) {
	for _, op := range Operations(ModeScientific) {
		if op.Mode != ModeScientific {
			t.Fatalf("%s: expected scientific mode, got %s", op.Name, op.Mode)
		}
	}
	basic := Operations(ModeBasic)
	if len(basic) == 0 || basic[0].Name != "add" {
		t.Fatalf("expected basic menu to start with add, got %+v", basic)
	}
}

func TestDivisionCauseChecksDivisorFirst(t *testing.T) {
	tests := []struct {
		args []float64
		v    float64
		want result.Cause
	}{
		{[]float64{1, 0}, math.Inf(1), result.DivisionByZero},
		{[]float64{0, 0}, math.NaN(), result.DivisionByZero},
		{[]float64{1e308, 1e-308}, math.Inf(1), result.Overflow},
		{[]float64{math.Inf(1), 2}, math.Inf(1), result.None},
		{[]float64{6, 3}, 2, result.None},
	}

	for _, tt := range tests {
		if got := divisionCause(tt.args, tt.v); got != tt.want {
			t.Fatalf("divisionCause(%v, %v): expected %v, got %v", tt.args, tt.v, tt.want, got)
		}
	}
}

func TestFactorialSaturates(t *testing.T) {
	if got := factorial(1e12); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf, got %v", got)
	}
	if got := factorial(5); got != 120 {
		t.Fatalf("expected 120, got %v", got)
	}
}

func TestIntOperationDescribe(t *testing.T) {
	op, ok := LookupInt("shl")
	if !ok {
		t.Fatal("shl not registered")
	}
	if got := op.Describe([]int64{3, 4}); got != "3 << 4" {
		t.Fatalf("unexpected description %q", got)
	}
}
