package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInt is returned by ParseIntAuto for text that is not an unsigned integer literal.
	ErrInvalidInt = errors.New("invalid integer")
	// ErrBitOp is returned by Bitwise for an unknown operation.
	ErrBitOp = errors.New("unknown bitwise operation")
)

// ParseIntAuto parses an unsigned integer literal with an optional 0b, 0o or 0x prefix.
// Surrounding space and letter case are ignored.
func ParseIntAuto(s string) (int64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	base := 10
	digits := s
	switch {
	case strings.HasPrefix(s, "0b"):
		base, digits = 2, s[2:]
	case strings.HasPrefix(s, "0o"):
		base, digits = 8, s[2:]
	case strings.HasPrefix(s, "0x"):
		base, digits = 16, s[2:]
	}
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInt, s)
	}
	n, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInt, s)
	}
	return n, nil
}

// BaseView is one integer rendered in the four programmer bases.
type BaseView struct {
	Dec string
	Bin string
	Oct string
	Hex string
}

// Bases renders n in decimal, binary, octal and hexadecimal. Binary shows the low 32 bits as an
// unsigned value, so negative numbers appear in two's complement.
func Bases(n int64) BaseView {
	return BaseView{
		Dec: strconv.FormatInt(n, 10),
		Bin: strconv.FormatUint(uint64(uint32(n)), 2),
		Oct: strconv.FormatInt(n, 8),
		Hex: strings.ToUpper(strconv.FormatInt(n, 16)),
	}
}

func (b BaseView) String() string {
	return fmt.Sprintf("DEC %s  BIN %s  OCT %s  HEX %s", b.Dec, b.Bin, b.Oct, b.Hex)
}

// BitResult is the outcome of a Bitwise operation.
type BitResult struct {
	Value int32
}

// Hex is the unsigned 32-bit hexadecimal form.
func (r BitResult) Hex() string {
	return strings.ToUpper(strconv.FormatUint(uint64(uint32(r.Value)), 16))
}

// Bin is the unsigned 32-bit binary form.
func (r BitResult) Bin() string {
	return strconv.FormatUint(uint64(uint32(r.Value)), 2)
}

func (r BitResult) String() string {
	return fmt.Sprintf("DEC %d  HEX %s  BIN %s", r.Value, r.Hex(), r.Bin())
}

// Bitwise applies op (AND, OR, XOR, NOT, SHL, SHR; case-insensitive) to a and b truncated to
// 32-bit signed integers. NOT ignores b. Shift counts use the low five bits; SHR is arithmetic.
func Bitwise(op string, a, b int64) (BitResult, error) {
	x, y := int32(a), int32(b)
	shift := uint32(y) & 31
	var r int32
	switch strings.ToUpper(strings.TrimSpace(op)) {
	case "AND":
		r = x & y
	case "OR":
		r = x | y
	case "XOR":
		r = x ^ y
	case "NOT":
		r = ^x
	case "SHL":
		r = x << shift
	case "SHR":
		r = x >> shift
	default:
		return BitResult{}, fmt.Errorf("%w %q", ErrBitOp, op)
	}
	return BitResult{Value: r}, nil
}
