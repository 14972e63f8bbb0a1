// Package signal: alignment operators — first-class combination strategies
// for arithmetic-like merging of two patterns. Where an overloaded-operator
// language writes p + q with a timing sigil, this package names the
// strategy explicitly: the Align value picks which operand's timing
// dominates the result, and the XxxWith family applies an operation under
// that strategy.

package signal

import "math"

// Align selects the whole-selection/join discipline used when combining
// two patterns pointwise.
type Align int

const (
	// CycleIn takes structure from the left operand (borrow-left).
	CycleIn Align = iota

	// CycleOut takes structure from the right operand (borrow-right).
	CycleOut

	// CycleMix intersects both operands' structure.
	CycleMix

	// Squeeze renders one full cycle of the right operand inside each
	// discrete event of the left.
	Squeeze

	// SqueezeOut renders one full cycle of the left operand inside each
	// discrete event of the right.
	SqueezeOut

	// Trig restarts the right operand (modulo a cycle) at each onset of
	// the left.
	Trig

	// TrigZero restarts the right operand from absolute time zero at each
	// onset of the left.
	TrigZero
)

// Combine merges two patterns with f under the chosen alignment.
// Unrecognized alignments fall back to CycleMix.
func Combine[A, B, C any](how Align, f func(a A, b B) C, a Pattern[A], b Pattern[B]) Signal[C] {
	curried := func(av A) func(B) C {
		return func(bv B) C { return f(av, bv) }
	}

	switch how {
	case CycleIn:
		return AppLeft(FMap(a, curried), b)
	case CycleOut:
		return AppRight(FMap(a, curried), b)
	case Squeeze:
		return SqueezeBind(a, func(av A) Signal[C] {
			return FMap(b, func(bv B) C { return f(av, bv) })
		})
	case SqueezeOut:
		return SqueezeBind(b, func(bv B) Signal[C] {
			return FMap(a, func(av A) C { return f(av, bv) })
		})
	case Trig:
		return TrigBind(a, func(av A) Signal[C] {
			return FMap(b, func(bv B) C { return f(av, bv) })
		})
	case TrigZero:
		return TrigZeroBind(a, func(av A) Signal[C] {
			return FMap(b, func(bv B) C { return f(av, bv) })
		})
	default:
		return AppBoth(FMap(a, curried), b)
	}
}

// AddWith adds two numeric patterns under the chosen alignment.
func AddWith(how Align, a, b Pattern[float64]) Signal[float64] {
	return Combine(how, func(x, y float64) float64 { return x + y }, a, b)
}

// SubWith subtracts the right pattern from the left.
func SubWith(how Align, a, b Pattern[float64]) Signal[float64] {
	return Combine(how, func(x, y float64) float64 { return x - y }, a, b)
}

// MulWith multiplies two numeric patterns.
func MulWith(how Align, a, b Pattern[float64]) Signal[float64] {
	return Combine(how, func(x, y float64) float64 { return x * y }, a, b)
}

// DivWith divides the left pattern by the right. Division by zero follows
// the fail-quiet policy and yields zero rather than an infinity that would
// poison downstream arithmetic.
func DivWith(how Align, a, b Pattern[float64]) Signal[float64] {
	return Combine(how, func(x, y float64) float64 {
		if y == 0 {
			return 0
		}

		return x / y
	}, a, b)
}

// ModWith reduces the left pattern modulo the right; a zero modulus yields
// zero.
func ModWith(how Align, a, b Pattern[float64]) Signal[float64] {
	return Combine(how, func(x, y float64) float64 {
		if y == 0 {
			return 0
		}

		return math.Mod(x, y)
	}, a, b)
}

// PowWith raises the left pattern to the right pattern's power.
func PowWith(how Align, a, b Pattern[float64]) Signal[float64] {
	return Combine(how, math.Pow, a, b)
}
