package pureguard

import (
	"math"
	"reflect"
	"regexp"
	"strings"
)

// canonicalNumber matches an optional minus sign, an integer part without a
// leading zero ahead of another digit, and an optional fraction.
var canonicalNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?$`)

// IsMathematicalNumber reports whether value is a finite integer, a finite
// float, or text that spells one without extraneous characters or
// leading zeros.
//
// Rules, first match wins:
//
//  1. nil, nil pointers, slices, arrays, maps and structs are never numbers.
//  2. Built-in integer kinds are numbers. Built-in floats are numbers when
//     integer-valued and finite.
//  3. Named types with a numeric underlying kind are numbers when their
//     value is integer-valued and finite.
//  4. Text containing "." that coerces to a finite number (see CoerceNumber)
//     is a number.
//  5. Text matching -?(0|[1-9][0-9]*)(\.[0-9]+)? is a number.
//
// Text means string, any named string type, and json.Number.
//
// A native float with a fractional part is NOT a number while the same
// value as text is:
//
//	IsMathematicalNumber(1.5)   // false
//	IsMathematicalNumber("1.5") // true
//
// Callers depend on this asymmetry; do not "fix" it here.
func IsMathematicalNumber(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	case float64:
		return isIntegral(v)
	case float32:
		return isIntegral(float64(v))
	case string:
		return IsMathematicalText(v)
	}

	rv, ok := indirect(reflect.ValueOf(value))
	if !ok {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		return isIntegral(rv.Float())
	case reflect.String:
		return IsMathematicalText(rv.String())
	}
	return false
}

// IsMathematicalText applies the text rules of IsMathematicalNumber to s.
func IsMathematicalText(s string) bool {
	if strings.Contains(s, ".") {
		if f, ok := CoerceNumber(s); ok && !math.IsInf(f, 0) {
			return true
		}
	}
	return canonicalNumber.MatchString(s)
}

func isIntegral(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// maxIndirections bounds pointer and interface chains. Longer chains only
// occur in self-referencing values such as x = &x.
const maxIndirections = 64

// indirect follows pointers and interfaces. It returns false when it meets
// a nil or an invalid value, or gives up after maxIndirections hops.
func indirect(rv reflect.Value) (reflect.Value, bool) {
	for hops := 0; rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface); hops++ {
		if rv.IsNil() || hops == maxIndirections {
			return rv, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}
