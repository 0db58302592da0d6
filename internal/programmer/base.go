// Package programmer implements the integer side of the calculator: base
// conversion, bitwise operations, shifts and population count on 64-bit
// two's-complement values.
package programmer

import (
	"fmt"
	"strconv"
	"strings"
)

// Base is the radix of a textual integer representation.
type Base int

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	}
	return fmt.Sprintf("base(%d)", int(b))
}

// Label is the short name used in history entries.
func (b Base) Label() string {
	switch b {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hex"
	}
	return b.String()
}

// ParseBase accepts a base by name ("hex", "binary", ...) or by radix ("16").
func ParseBase(name string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "2", "bin", "binary":
		return Binary, nil
	case "8", "oct", "octal":
		return Octal, nil
	case "10", "dec", "decimal":
		return Decimal, nil
	case "16", "hex", "hexadecimal":
		return Hexadecimal, nil
	}
	return 0, fmt.Errorf("%w: unknown base %q", ErrInvalidArgument, name)
}

// Format renders n in base b. Binary, octal and hexadecimal show the raw
// 64-bit pattern, so negative numbers come out in two's complement.
func Format(n int64, b Base) string {
	switch b {
	case Decimal:
		return strconv.FormatInt(n, 10)
	case Hexadecimal:
		return strings.ToUpper(strconv.FormatUint(uint64(n), 16))
	case Binary, Octal:
		return strconv.FormatUint(uint64(n), int(b))
	}
	return ""
}

// Parse reads s as a number in base b. Non-decimal input may use all 64
// bits; the pattern is reinterpreted as a signed value, which makes Parse
// the inverse of Format for every int64.
func Parse(s string, b Base) (int64, error) {
	if b == Decimal {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: decimal %q", ErrInvalidFormat, s)
		}
		return n, nil
	}

	digits := s
	if b == Hexadecimal {
		digits = strings.TrimSpace(digits)
		if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
			digits = digits[2:]
		}
	}

	switch b {
	case Binary, Octal, Hexadecimal:
	default:
		return 0, fmt.Errorf("%w: unsupported base %d", ErrInvalidArgument, int(b))
	}

	u, err := strconv.ParseUint(digits, int(b), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidFormat, b, s)
	}
	return int64(u), nil
}

func DecimalToBinary(n int64) string      { return Format(n, Binary) }
func DecimalToHexadecimal(n int64) string { return Format(n, Hexadecimal) }
func DecimalToOctal(n int64) string       { return Format(n, Octal) }

func BinaryToDecimal(s string) (int64, error)      { return Parse(s, Binary) }
func HexadecimalToDecimal(s string) (int64, error) { return Parse(s, Hexadecimal) }
func OctalToDecimal(s string) (int64, error)       { return Parse(s, Octal) }

// Representations holds a value in every supported base.
type Representations struct {
	Decimal     string `json:"decimal"`
	Binary      string `json:"binary"`
	Octal       string `json:"octal"`
	Hexadecimal string `json:"hexadecimal"`
}

// Represent renders n in all four bases.
func Represent(n int64) Representations {
	return Representations{
		Decimal:     Format(n, Decimal),
		Binary:      Format(n, Binary),
		Octal:       Format(n, Octal),
		Hexadecimal: Format(n, Hexadecimal),
	}
}
