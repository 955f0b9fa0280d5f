package color

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a string is not a valid color.
type ErrorKind int

const (
	// BadLength means the digits (without a leading '#') are neither 3 nor 6 long.
	BadLength ErrorKind = iota + 1
	// InvalidChar means the length is right but a character is not a hex digit.
	InvalidChar
)

// String returns a human readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case BadLength:
		return "bad length"
	case InvalidChar:
		return "invalid character"
	default:
		return "unknown"
	}
}

var (
	ErrBadLength   = errors.New("length must be 3 or 6 hex digits")
	ErrInvalidChar = errors.New("contains a non-hexadecimal character")
)

// ParseError reports a string that could not be decoded.
type ParseError struct {
	Input string
	Kind  ErrorKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s is not a valid color: %v", e.Input, e.Unwrap())
}

// Unwrap lets errors.Is match ErrBadLength and ErrInvalidChar.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case BadLength:
		return ErrBadLength
	case InvalidChar:
		return ErrInvalidChar
	default:
		return nil
	}
}

const (
	shortLen = 3
	fullLen  = 6
)

// Parse decodes "[#]RGB" or "[#]RRGGBB". Digits are case-insensitive and a
// shorthand digit d expands to the byte d*16+d.
func Parse(s string) (Color, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '#' {
		digits = digits[1:]
	}

	// Length is in bytes, so a multi-byte rune counts once per byte.
	n := len(digits)
	if n != shortLen && n != fullLen {
		return Color{}, &ParseError{Input: s, Kind: BadLength}
	}

	var nibbles [fullLen]uint8
	for i := 0; i < n; i++ {
		v, ok := hexValue(digits[i])
		if !ok {
			return Color{}, &ParseError{Input: s, Kind: InvalidChar}
		}
		nibbles[i] = v
	}

	if n == shortLen {
		return RGB(
			nibbles[0]*16+nibbles[0],
			nibbles[1]*16+nibbles[1],
			nibbles[2]*16+nibbles[2],
		), nil
	}
	return RGB(
		nibbles[0]*16+nibbles[1],
		nibbles[2]*16+nibbles[3],
		nibbles[4]*16+nibbles[5],
	), nil
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
