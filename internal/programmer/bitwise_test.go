package programmer

import (
	"errors"
	"math"
	"testing"
)

func TestBitwise(t *testing.T) {
	if got := BitwiseAnd(12, 10); got != 8 {
		t.Fatalf("AND: expected 8, got %d", got)
	}
	if got := BitwiseOr(12, 10); got != 14 {
		t.Fatalf("OR: expected 14, got %d", got)
	}
	if got := BitwiseXor(12, 10); got != 6 {
		t.Fatalf("XOR: expected 6, got %d", got)
	}
	if got := BitwiseNot(0); got != -1 {
		t.Fatalf("NOT: expected -1, got %d", got)
	}
}

func TestShifts(t *testing.T) {
	if _, err := LeftShift(1, 64); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for 64, got %v", err)
	}
	if _, err := RightShift(1, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for -1, got %v", err)
	}

	got, err := LeftShift(1, 63)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != math.MinInt64 {
		t.Fatalf("expected %d, got %d", int64(math.MinInt64), got)
	}

	got, err = RightShift(-8, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -4 {
		t.Fatalf("expected sign-extended -4, got %d", got)
	}
}

func TestPopCount(t *testing.T) {
	tests := map[int64]int{
		0:             0,
		1:             1,
		7:             3,
		-1:            64,
		math.MinInt64: 1,
		math.MaxInt64: 63,
	}

	for n, want := range tests {
		if got := PopCount(n); got != want {
			t.Fatalf("PopCount(%d): expected %d, got %d", n, want, got)
		}
	}
}
