package pureguard

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// CoerceNumber converts text to a number the way a loosely typed runtime
// does when a string is used as a number (JavaScript's Number(s)).
//
// Surrounding white space is ignored and an empty string is zero.
// "Infinity" with an optional sign, 0x / 0o / 0b prefixed integers and
// decimal literals with an optional exponent are accepted. Magnitudes
// beyond float64 range yield ±Inf and are still reported as ok.
//
// Anything else, including "inf", "NaN" and underscore separators,
// returns NaN and false.
//
// Example:
//
//	f, ok := CoerceNumber(" 0x1F ") // 31, true
//	f, ok = CoerceNumber("0.2abc")  // NaN, false
func CoerceNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, isCoercionSpace)
	if s == "" {
		return 0, true
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		}
	}

	if !isDecimalLiteral(s) {
		return math.NaN(), false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return math.NaN(), false
	}
	return f, true
}

// isCoercionSpace reports the characters trimmed before coercion: Unicode
// white space and the byte order mark, but not NEL (U+0085).
func isCoercionSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// parseRadix accumulates unsigned digits in the given base. Values wider
// than 64 bits lose precision instead of failing.
func parseRadix(digits string, base int) (float64, bool) {
	if digits == "" {
		return math.NaN(), false
	}
	var f float64
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d < 0 || d >= base {
			return math.NaN(), false
		}
		f = f*float64(base) + float64(d)
	}
	return f, true
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// isDecimalLiteral matches [+-]? (digits [. digits?] | . digits) ([eE] [+-]? digits)?
func isDecimalLiteral(value string) bool {
	i := 0
	if value[i] == '+' || value[i] == '-' {
		i++
		if i == len(value) {
			return false
		}
	}
	intDigits := 0
	for i < len(value) && isDigit(value[i]) {
		i++
		intDigits++
	}
	if i < len(value) && value[i] == '.' {
		i++
		fracDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			fracDigits++
		}
		if intDigits == 0 && fracDigits == 0 {
			return false
		}
	} else if intDigits == 0 {
		return false
	}
	if i < len(value) && (value[i] == 'e' || value[i] == 'E') {
		i++
		if i == len(value) {
			return false
		}
		if value[i] == '+' || value[i] == '-' {
			i++
		}
		expDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(value)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
