/*
Package pureguard provides pure runtime guards for loosely typed values.

# Overview

Values decoded from JSON, YAML, query strings or form posts arrive as
strings, float64s, maps and slices. Pureguard answers the small questions
callers keep re-implementing about them: is this a number, is this key
present, is this slice empty, is this one of the allowed values.

Every function is pure: no state, no allocation beyond transient
conversions, safe for concurrent use.

# Mathematical Numbers

IsMathematicalNumber accepts finite integers, integer-valued floats and
canonically written numeric text:

	pureguard.IsMathematicalNumber(42)      // true
	pureguard.IsMathematicalNumber("0")     // true
	pureguard.IsMathematicalNumber("-0.2")  // true
	pureguard.IsMathematicalNumber("01")    // false, leading zero
	pureguard.IsMathematicalNumber("0.2ab") // false, trailing garbage
	pureguard.IsMathematicalNumber(1.5)     // false, see below

A native float with a fractional part is rejected while the same value as
text is accepted. This asymmetry is long-standing behavior and is kept.

CoerceNumber exposes the loose text-to-number conversion the classifier
relies on for decimal text.

# Guards

  - IsDefined: not nil, not a nil pointer/map/slice/func/chan
  - HasProperty, HasProperties: key presence on maps and structs
  - IsEmptyArray, IsNonEmptyArray: slice and array length checks
  - IsEnumKey, IsEnumValue: membership in a lookup-table enum

# Keys

KeysOf and ValuesOf list a map in key order. DeepKeys walks nested maps and
structs and returns dotted paths; Lookup resolves one:

	doc := map[string]any{"db": map[string]any{"port": 5432}}
	pureguard.DeepKeys(doc)          // [db db.port]
	pureguard.Lookup(doc, "db.port") // 5432, true

# Predicates

Predicate is a functional type with monoid operations, in the spirit of
functions-over-interfaces:

	amount := pureguard.MathematicalNumber.
	    Compose(func(v any) bool { return v != "0" })

	if err := amount.Check(r.URL.Query().Get("amount")); err != nil {
	    http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	}

Check failures are *ValidationError values wrapping a sentinel such as
ErrNotNumber; match them with errors.Is. Composing a Guard keeps its
sentinel. Or and Not return a plain Predicate, which reports ErrPredicate;
wrap it with MustBe to choose another sentinel.

# Class Names

	pureguard.ClassNames("btn", pureguard.When(!valid, "disabled"), "")
	// "btn disabled" when !valid, "btn" otherwise

# Package Import

	import "github.com/Pure-Company/pureguard"
*/
package pureguard
