// SPDX-License-Identifier: MIT

// Package cycle: Time — an immutable exact-rational position in cycles.
// This file declares the Time value type, its constructors, arithmetic,
// comparisons, and the cycle-boundary helpers Sam/NextSam/CyclePos.
//
// Invariants:
//   - Time is immutable: every operation returns a fresh value and never
//     mutates its operands, so Time values may be shared across goroutines.
//   - The zero value of Time is the rational 0 and is fully usable.
//   - No operation panics: dividing by a zero Time yields zero (the engine's
//     fail-quiet policy; rate combinators guard zero before dividing anyway).

package cycle

import "math/big"

// Time is an exact rational number of cycles. The zero value is 0.
type Time struct {
	rat *big.Rat
}

// Shared canonical rationals. They are never mutated: all arithmetic below
// allocates a fresh big.Rat for its result.
var (
	zeroRat = new(big.Rat)
	oneInt  = big.NewInt(1)
)

// Zero is the rational 0, the origin of pattern time.
var Zero = Time{}

// One is the rational 1, the length of a single cycle.
var One = FromInt(1)

// New returns the rational num/den. A zero denominator is degenerate input
// and yields Zero rather than panicking.
func New(num, den int64) Time {
	if den == 0 {
		return Zero
	}

	return Time{rat: big.NewRat(num, den)}
}

// FromInt returns the integral rational n/1.
func FromInt(n int64) Time {
	return Time{rat: new(big.Rat).SetInt64(n)}
}

// FromRat copies r into a Time. A nil r yields Zero.
func FromRat(r *big.Rat) Time {
	if r == nil {
		return Zero
	}

	return Time{rat: new(big.Rat).Set(r)}
}

// FromFloat converts f to the exactly-representable rational it denotes.
// NaN and ±Inf are degenerate input and yield Zero.
func FromFloat(f float64) Time {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return Zero
	}

	return Time{rat: r}
}

// val exposes the backing rational, substituting the canonical zero for the
// zero value. Callers must treat the result as read-only.
func (t Time) val() *big.Rat {
	if t.rat == nil {
		return zeroRat
	}

	return t.rat
}

// Rat returns an independent copy of t as a *big.Rat.
func (t Time) Rat() *big.Rat {
	return new(big.Rat).Set(t.val())
}

// Float returns the nearest float64 to t. It exists for waveform *values*
// only; pattern time itself never round-trips through floating point.
func (t Time) Float() float64 {
	f, _ := t.val().Float64()

	return f
}

// String renders t in lowest terms, e.g. "3", "-1/2".
func (t Time) String() string {
	return t.val().RatString()
}

// Add returns t + o.
func (t Time) Add(o Time) Time {
	return Time{rat: new(big.Rat).Add(t.val(), o.val())}
}

// Sub returns t - o.
func (t Time) Sub(o Time) Time {
	return Time{rat: new(big.Rat).Sub(t.val(), o.val())}
}

// Mul returns t * o.
func (t Time) Mul(o Time) Time {
	return Time{rat: new(big.Rat).Mul(t.val(), o.val())}
}

// Div returns t / o. Division by zero is degenerate input and yields Zero.
func (t Time) Div(o Time) Time {
	if o.Sign() == 0 {
		return Zero
	}

	return Time{rat: new(big.Rat).Quo(t.val(), o.val())}
}

// Neg returns -t.
func (t Time) Neg() Time {
	return Time{rat: new(big.Rat).Neg(t.val())}
}

// Sign reports -1, 0, or +1 according to the sign of t.
func (t Time) Sign() int {
	return t.val().Sign()
}

// Cmp compares t and o, returning -1, 0, or +1.
func (t Time) Cmp(o Time) int {
	return t.val().Cmp(o.val())
}

// Equal reports t == o.
func (t Time) Equal(o Time) bool { return t.Cmp(o) == 0 }

// Less reports t < o.
func (t Time) Less(o Time) bool { return t.Cmp(o) < 0 }

// LessEq reports t <= o.
func (t Time) LessEq(o Time) bool { return t.Cmp(o) <= 0 }

// Greater reports t > o.
func (t Time) Greater(o Time) bool { return t.Cmp(o) > 0 }

// GreaterEq reports t >= o.
func (t Time) GreaterEq(o Time) bool { return t.Cmp(o) >= 0 }

// Min returns the smaller of t and o.
func (t Time) Min(o Time) Time {
	if t.Cmp(o) <= 0 {
		return t
	}

	return o
}

// Max returns the larger of t and o.
func (t Time) Max(o Time) Time {
	if t.Cmp(o) >= 0 {
		return t
	}

	return o
}

// floorInt returns floor(t) as a big integer (round toward -∞, exact for
// negative positions, unlike big.Int.Quo's truncation).
func (t Time) floorInt() *big.Int {
	q, m := new(big.Int), new(big.Int)
	q.QuoRem(t.val().Num(), t.val().Denom(), m)
	if m.Sign() < 0 {
		q.Sub(q, oneInt)
	}

	return q
}

// Sam returns the start of the cycle containing t, i.e. floor(t).
func (t Time) Sam() Time {
	return Time{rat: new(big.Rat).SetInt(t.floorInt())}
}

// NextSam returns the start of the cycle after the one containing t.
func (t Time) NextSam() Time {
	return t.Sam().Add(One)
}

// CyclePos returns the position of t within its cycle: t - Sam(t) ∈ [0, 1).
func (t Time) CyclePos() Time {
	return t.Sub(t.Sam())
}

// CycleIndex returns floor(t) as an int64 cycle number.
func (t Time) CycleIndex() int64 {
	return t.floorInt().Int64()
}
