package pureguard

import "errors"

// ============================================================================
// Predicate Bindings
// ============================================================================

// Predicate is a functional binding for a boolean guard over any value.
// It provides monoid composition and conversion to errors.
//
// Example:
//
//	positive := Predicate(func(v any) bool {
//	    n, ok := v.(int)
//	    return ok && n > 0
//	})
//
//	err := MathematicalNumber.Compose(positive).Check(input)
type Predicate func(value any) bool

// Test runs the predicate.
func (p Predicate) Test(value any) bool {
	return p(value)
}

// Empty returns a predicate accepting everything (Monoid identity).
func (p Predicate) Empty() Predicate {
	return func(any) bool { return true }
}

// Compose accepts values accepted by both predicates, short-circuiting
// on the first rejection (Monoid operation).
func (p Predicate) Compose(next Predicate) Predicate {
	return func(value any) bool {
		return p(value) && next(value)
	}
}

// Or accepts values accepted by either predicate.
func (p Predicate) Or(other Predicate) Predicate {
	return func(value any) bool {
		return p(value) || other(value)
	}
}

// Not inverts the predicate.
func (p Predicate) Not() Predicate {
	return func(value any) bool {
		return !p(value)
	}
}

// Tap calls fn with every value and its outcome without changing it.
func (p Predicate) Tap(fn func(value any, ok bool)) Predicate {
	return func(value any) bool {
		ok := p(value)
		fn(value, ok)
		return ok
	}
}

// Check returns nil when value passes, otherwise a *ValidationError
// wrapping ErrPredicate.
func (p Predicate) Check(value any) error {
	if p(value) {
		return nil
	}
	return NewValidationError(value, CodeUnprocessed, ErrPredicate)
}

// Guard is a Predicate paired with the sentinel its Check reports.
type Guard struct {
	Predicate
	err error
}

// MustBe pairs pred with err so that Check wraps err instead of
// ErrPredicate.
func MustBe(pred Predicate, err error) Guard {
	return Guard{Predicate: pred, err: err}
}

// Check returns nil when value passes, otherwise a *ValidationError
// wrapping the guard's sentinel.
func (g Guard) Check(value any) error {
	if g.Predicate(value) {
		return nil
	}
	code := CodeUnprocessed
	if errors.Is(g.err, ErrUndefined) {
		code = CodeInvalid
	}
	return NewValidationError(value, code, g.err)
}

// Compose narrows the guard with next. The result still reports the
// guard's sentinel, so MathematicalNumber.Compose(positive) fails with
// ErrNotNumber.
func (g Guard) Compose(next Predicate) Guard {
	return Guard{Predicate: g.Predicate.Compose(next), err: g.err}
}

// Ready-made guards over the package predicates.
var (
	MathematicalNumber = MustBe(IsMathematicalNumber, ErrNotNumber)
	Defined            = MustBe(IsDefined, ErrUndefined)
	NonEmptyArray      = MustBe(IsNonEmptyArray, ErrEmpty)
)

// Enum builds a predicate accepting values of enum.
func Enum[K, V comparable](enum map[K]V) Guard {
	return MustBe(func(value any) bool {
		v, ok := value.(V)
		return ok && IsEnumValue(enum, v)
	}, ErrNotEnum)
}

// NewPredicate returns fn as a Predicate.
func NewPredicate(fn func(any) bool) Predicate {
	return Predicate(fn)
}
