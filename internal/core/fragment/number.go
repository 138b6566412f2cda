package fragment

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber converts s the way a loose string-to-number conversion does:
// surrounding whitespace is ignored, the empty string is 0, and decimal,
// 0x/0o/0b integer and Infinity literals are accepted. ok is false when s is
// not a number.
func ParseNumber(s string) (n float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			v, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(v), true
		}
	}

	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range literals still carry a value (±Inf or 0).
		if numErr, isNum := err.(*strconv.NumError); isNum && numErr.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// NumberOrZero is ParseNumber with non-numbers mapped to 0.
func NumberOrZero(s string) float64 {
	n, ok := ParseNumber(s)
	if !ok {
		return 0
	}
	return n
}

// FormatNumber renders f the way a number is stringified when interpolated
// into text: integral values without a fraction, shortest round-trip digits
// otherwise, and exponent notation outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads the exponent to two digits ("1e-07"); drop the padding.
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
