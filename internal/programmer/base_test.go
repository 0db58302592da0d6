package programmer

import (
	"errors"
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		n    int64
		base Base
		want string
	}{
		{n: 0, base: Binary, want: "0"},
		{n: 0, base: Hexadecimal, want: "0"},
		{n: 0, base: Octal, want: "0"},
		{n: 5, base: Binary, want: "101"},
		{n: 255, base: Hexadecimal, want: "FF"},
		{n: 64, base: Octal, want: "100"},
		{n: -1, base: Hexadecimal, want: "FFFFFFFFFFFFFFFF"},
		{n: -1, base: Octal, want: "1777777777777777777777"},
		{n: -42, base: Decimal, want: "-42"},
	}

	for _, tc := range tests {
		if got := Format(tc.n, tc.base); got != tc.want {
			t.Fatalf("Format(%d, %s): expected %q, got %q", tc.n, tc.base, tc.want, got)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		base Base
		want int64
	}{
		{in: "101", base: Binary, want: 5},
		{in: "ff", base: Hexadecimal, want: 255},
		{in: "0xFF", base: Hexadecimal, want: 255},
		{in: " 1A ", base: Hexadecimal, want: 26},
		{in: "777", base: Octal, want: 511},
		{in: "FFFFFFFFFFFFFFFF", base: Hexadecimal, want: -1},
		{in: "-17", base: Decimal, want: -17},
	}

	for _, tc := range tests {
		got, err := Parse(tc.in, tc.base)
		if err != nil {
			t.Fatalf("Parse(%q, %s): unexpected error: %v", tc.in, tc.base, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q, %s): expected %d, got %d", tc.in, tc.base, tc.want, got)
		}
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		in   string
		base Base
	}{
		{in: "", base: Binary},
		{in: "102", base: Binary},
		{in: " 101", base: Binary},
		{in: "78", base: Octal},
		{in: "", base: Hexadecimal},
		{in: "0x", base: Hexadecimal},
		{in: "GG", base: Hexadecimal},
		{in: "1" + "0000000000000000", base: Hexadecimal},
		{in: "abc", base: Decimal},
	}

	for _, tc := range tests {
		if _, err := Parse(tc.in, tc.base); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("Parse(%q, %s): expected ErrInvalidFormat, got %v", tc.in, tc.base, err)
		}
	}
}

func TestConversionRoundTrip(t *testing.T) {
	values := []int64{0, 1, 5, 255, 1 << 40, math.MaxInt64, -1, math.MinInt64}

	for _, n := range values {
		for _, b := range []Base{Binary, Octal, Decimal, Hexadecimal} {
			got, err := Parse(Format(n, b), b)
			if err != nil {
				t.Fatalf("round trip %d in %s: unexpected error: %v", n, b, err)
			}
			if got != n {
				t.Fatalf("round trip %d in %s: got %d", n, b, got)
			}
		}
	}

	for n := int64(0); n < 1024; n++ {
		got, err := BinaryToDecimal(DecimalToBinary(n))
		if err != nil || got != n {
			t.Fatalf("binary round trip %d: got %d, err %v", n, got, err)
		}
	}
}

func TestParseBase(t *testing.T) {
	for in, want := range map[string]Base{"bin": Binary, "8": Octal, "Decimal": Decimal, " HEX ": Hexadecimal} {
		got, err := ParseBase(in)
		if err != nil {
			t.Fatalf("ParseBase(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseBase(%q): expected %s, got %s", in, want, got)
		}
	}

	if _, err := ParseBase("base64"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRepresent(t *testing.T) {
	got := Represent(10)
	want := Representations{Decimal: "10", Binary: "1010", Octal: "12", Hexadecimal: "A"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
