// SPDX-License-Identifier: MIT

// Package cycle: Arc — a half-open interval [Begin, End) of pattern time.
// This file declares the Arc value type, the intersection primitives
// (including the zero-width tie-break contract), per-cycle decomposition,
// and the arc-level time transforms used by the remapping operators.

package cycle

import "fmt"

// Arc is the half-open interval [Begin, End). Begin may equal End: such a
// zero-width "point" arc represents a continuous-signal sample position.
type Arc struct {
	Begin Time
	End   Time
}

// two is the divisor used by Midpoint.
var two = FromInt(2)

// NewArc returns the arc [begin, end).
func NewArc(begin, end Time) Arc {
	return Arc{Begin: begin, End: end}
}

// Point returns the zero-width arc [t, t).
func Point(t Time) Arc {
	return Arc{Begin: t, End: t}
}

// IsPoint reports whether a has zero width.
func (a Arc) IsPoint() bool {
	return a.Begin.Equal(a.End)
}

// Width returns End - Begin.
func (a Arc) Width() Time {
	return a.End.Sub(a.Begin)
}

// Midpoint returns the centre of the arc; for a point arc this is the point
// itself. Continuous signals sample their value function here.
func (a Arc) Midpoint() Time {
	return a.Begin.Add(a.End).Div(two)
}

// String renders the arc as "[begin,end)".
func (a Arc) String() string {
	return fmt.Sprintf("[%s,%s)", a.Begin, a.End)
}

// Sect returns the raw intersection (max Begin, min End) without checking
// that the result is a valid interval. Join disciplines use it to intersect
// wholes, whose operands are known to overlap.
func (a Arc) Sect(b Arc) Arc {
	return Arc{Begin: a.Begin.Max(b.Begin), End: a.End.Min(b.End)}
}

// SectMaybe intersects a and b, reporting whether they intersect at all.
//
// An inverted result (begin > end) never intersects. A zero-width result is
// kept only while it does not lie on the exclusive End boundary of a
// non-zero-width operand: a point arc at another arc's Begin intersects it,
// a point arc at its End does not. This asymmetry preserves continuous
// samples at arc boundaries that a strict-inequality rule would drop.
func (a Arc) SectMaybe(b Arc) (Arc, bool) {
	begin := a.Begin.Max(b.Begin)
	end := a.End.Min(b.End)
	if begin.Greater(end) {
		return Arc{}, false
	}
	if begin.Equal(end) {
		if begin.Equal(a.End) && a.Begin.Less(a.End) {
			return Arc{}, false
		}
		if begin.Equal(b.End) && b.Begin.Less(b.End) {
			return Arc{}, false
		}
	}

	return Arc{Begin: begin, End: end}, true
}

// WithTime applies f to both endpoints.
func (a Arc) WithTime(f func(Time) Time) Arc {
	return Arc{Begin: f(a.Begin), End: f(a.End)}
}

// CycleMap applies f to both endpoints relative to the cycle containing
// Begin: each endpoint t becomes sam(Begin) + f(t - sam(Begin)). Zoom uses
// this to remap within-cycle positions while leaving the cycle index alone.
func (a Arc) CycleMap(f func(Time) Time) Arc {
	sam := a.Begin.Sam()

	return Arc{
		Begin: sam.Add(f(a.Begin.Sub(sam))),
		End:   sam.Add(f(a.End.Sub(sam))),
	}
}

// WholeCycle returns the full cycle containing Begin: [sam, sam+1).
func (a Arc) WholeCycle() Arc {
	return Arc{Begin: a.Begin.Sam(), End: a.Begin.NextSam()}
}

// SplitCycles decomposes the arc into one sub-arc per cycle it touches, in
// ascending order. Arcs within a single cycle and zero-width arcs are
// returned unchanged as a single-element result. Iteration is linear in the
// number of cycles spanned, so multi-cycle queries never deepen recursion.
func (a Arc) SplitCycles() []Arc {
	if a.Begin.GreaterEq(a.End) {
		return []Arc{a}
	}

	var out []Arc
	begin := a.Begin
	for begin.Less(a.End) {
		end := begin.NextSam().Min(a.End)
		out = append(out, Arc{Begin: begin, End: end})
		begin = end
	}

	return out
}
