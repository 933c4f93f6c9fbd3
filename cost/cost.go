package cost

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Panic payloads raised on contract violations. Both are wrapped with the
// offending operands; match them with errors.Is on the recovered error.
var (
	// ErrUnordered is raised when Compare receives a value that has no place in
	// the ordering (a non-normalized float).
	ErrUnordered = errors.New("cost: non-normalized value in pathfinding")
	// ErrOverflow is raised when an integer cost sum does not fit its type.
	ErrOverflow = errors.New("cost: path cost overflows its type")
)

// Number is the set of built-in numeric types usable as path costs.
type Number interface {
	constraints.Integer | constraints.Float
}

// Model is the capability a cost type must provide to the search engine.
type Model[C any] interface {
	// Compare returns -1, 0 or +1 as a is less than, equal to, or greater than b.
	Compare(a, b C) int
	// Zero returns the additive identity.
	Zero() C
	// Add returns a + b.
	Add(a, b C) C
	// Normalize returns the usable form of c, or false if c means "unreachable".
	Normalize(c C) (C, bool)
}

// Unsigned models unsigned integer costs. Every value is valid; Add panics with
// ErrOverflow when the sum wraps.
type Unsigned[C constraints.Unsigned] struct{}

func (Unsigned[C]) Compare(a, b C) int { return compareOrdered(a, b) }
func (Unsigned[C]) Zero() C            { return 0 }
func (Unsigned[C]) Add(a, b C) C       { return checkedAdd(a, b) }

// Normalize is the identity.
func (Unsigned[C]) Normalize(c C) (C, bool) { return c, true }

// Signed models signed integer costs. Negative values are unreachable, since the
// search requires non-negative edge costs.
type Signed[C constraints.Signed] struct{}

func (Signed[C]) Compare(a, b C) int { return compareOrdered(a, b) }
func (Signed[C]) Zero() C            { return 0 }
func (Signed[C]) Add(a, b C) C       { return checkedAdd(a, b) }

// Normalize rejects negative values.
func (Signed[C]) Normalize(c C) (C, bool) {
	if c < 0 {
		return 0, false
	}

	return c, true
}

// Float models floating point costs.
type Float[C constraints.Float] struct{}

// Compare panics with ErrUnordered if either operand is NaN.
func (Float[C]) Compare(a, b C) int {
	if a != a || b != b {
		panic(fmt.Errorf("%w: compare(%v, %v)", ErrUnordered, a, b))
	}

	return compareOrdered(a, b)
}

func (Float[C]) Zero() C      { return 0 }
func (Float[C]) Add(a, b C) C { return a + b }

// Normalize maps NaN and ±Inf to unreachable, both zeros to +0 and rejects
// any other negative value.
func (Float[C]) Normalize(c C) (C, bool) {
	f := float64(c)
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, false
	case f == 0:
		return 0, true
	case f < 0:
		return 0, false
	default:
		return c, true
	}
}

// For returns the default model for the built-in numeric type C.
func For[C Number]() Model[C] {
	var m any
	switch any(*new(C)).(type) {
	case float32:
		m = Float[float32]{}
	case float64:
		m = Float[float64]{}
	case uint:
		m = Unsigned[uint]{}
	case uint8:
		m = Unsigned[uint8]{}
	case uint16:
		m = Unsigned[uint16]{}
	case uint32:
		m = Unsigned[uint32]{}
	case uint64:
		m = Unsigned[uint64]{}
	case uintptr:
		m = Unsigned[uintptr]{}
	case int:
		m = Signed[int]{}
	case int8:
		m = Signed[int8]{}
	case int16:
		m = Signed[int16]{}
	case int32:
		m = Signed[int32]{}
	case int64:
		m = Signed[int64]{}
	}
	if model, ok := m.(Model[C]); ok {
		return model
	}

	// Named numeric types (type Meters float64) fall through the switch above.
	return numeric[C]{}
}

// numeric covers named types whose underlying type is numeric. It applies the
// strictest rules: NaN, ±Inf and negatives are unreachable.
type numeric[C Number] struct{}

func (numeric[C]) Compare(a, b C) int {
	if a != a || b != b {
		panic(fmt.Errorf("%w: compare(%v, %v)", ErrUnordered, a, b))
	}

	return compareOrdered(a, b)
}

func (numeric[C]) Zero() C      { return 0 }
func (numeric[C]) Add(a, b C) C { return checkedAdd(a, b) }

func (numeric[C]) Normalize(c C) (C, bool) {
	f := float64(c)
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0), f < 0:
		return 0, false
	case f == 0:
		return 0, true
	default:
		return c, true
	}
}

// checkedAdd returns a + b and panics with ErrOverflow if the sum wrapped.
// Float sums saturate to ±Inf instead and never trip the check.
func checkedAdd[C Number](a, b C) C {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		panic(fmt.Errorf("%w: %v + %v", ErrOverflow, a, b))
	}

	return s
}

func compareOrdered[C constraints.Ordered](a, b C) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
