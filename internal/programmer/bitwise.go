package programmer

import "fmt"

// MaxShift is the largest shift distance accepted by LeftShift and RightShift.
const MaxShift = 63

func BitwiseAnd(a, b int64) int64 { return a & b }
func BitwiseOr(a, b int64) int64  { return a | b }
func BitwiseXor(a, b int64) int64 { return a ^ b }
func BitwiseNot(a int64) int64    { return ^a }

// LeftShift shifts n left by positions bits.
func LeftShift(n int64, positions int) (int64, error) {
	if err := checkShift(positions); err != nil {
		return 0, err
	}
	return n << positions, nil
}

// RightShift shifts n right by positions bits, extending the sign bit.
func RightShift(n int64, positions int) (int64, error) {
	if err := checkShift(positions); err != nil {
		return 0, err
	}
	return n >> positions, nil
}

func checkShift(positions int) error {
	if positions < 0 || positions > MaxShift {
		return fmt.Errorf("%w: shift positions must be between 0 and %d, got %d", ErrInvalidArgument, MaxShift, positions)
	}
	return nil
}

// PopCount returns the number of set bits in the two's-complement pattern of n.
func PopCount(n int64) int {
	count := 0
	for u := uint64(n); u != 0; u >>= 1 {
		count += int(u & 1)
	}
	return count
}
