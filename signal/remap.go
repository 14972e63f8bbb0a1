// Package signal: time remapping — pure arc transforms applied to the
// query window on the way in and to event extents on the way out.
//
// Algorithm outline (shared by every operator here):
//  1. Map the query arc with the forward transform and delegate.
//  2. Map each resulting event's active and whole with the inverse.
//  3. For per-cycle operators (Rev, Zoom, fast-gap), split the query into
//     per-cycle sub-arcs first so the cycle-relative transform is exact.
//
// Degenerate rates and bounds follow the engine's fail-quiet policy: they
// yield Silence, never an error.

package signal

import "github.com/ejconlon/Tidal/cycle"

// Fast speeds the pattern up by rate: what occupied one cycle now occupies
// 1/rate of it. A zero rate is degenerate input and yields silence; a
// negative rate plays the speeded-up pattern reversed.
func Fast[V any](rate cycle.Time, p Pattern[V]) Signal[V] {
	switch rate.Sign() {
	case 0:
		return Silence[V]()
	case -1:
		return Rev(Fast(rate.Neg(), p))
	}
	sp := From(p)

	return New(func(st State) []Event[V] {
		scaled := st.Arc.WithTime(func(t cycle.Time) cycle.Time { return t.Mul(rate) })
		evs := sp.Query(st.WithArc(scaled))
		out := make([]Event[V], len(evs))
		for i, e := range evs {
			out[i] = e.withArcs(func(a cycle.Arc) cycle.Arc {
				return a.WithTime(func(t cycle.Time) cycle.Time { return t.Div(rate) })
			})
		}

		return out
	})
}

// Slow stretches the pattern by rate; Slow(0) is silence by policy.
func Slow[V any](rate cycle.Time, p Pattern[V]) Signal[V] {
	if rate.Sign() == 0 {
		return Silence[V]()
	}

	return Fast(cycle.One.Div(rate), p)
}

// Early shifts the pattern to happen offset cycles sooner: the query runs
// offset later in pattern time and results are pulled back.
func Early[V any](offset cycle.Time, p Pattern[V]) Signal[V] {
	sp := From(p)

	return New(func(st State) []Event[V] {
		shifted := st.Arc.WithTime(func(t cycle.Time) cycle.Time { return t.Add(offset) })
		evs := sp.Query(st.WithArc(shifted))
		out := make([]Event[V], len(evs))
		for i, e := range evs {
			out[i] = e.withArcs(func(a cycle.Arc) cycle.Arc {
				return a.WithTime(func(t cycle.Time) cycle.Time { return t.Sub(offset) })
			})
		}

		return out
	})
}

// Late shifts the pattern to happen offset cycles later.
func Late[V any](offset cycle.Time, p Pattern[V]) Signal[V] {
	return Early(offset.Neg(), p)
}

// fastGap speeds the pattern up within each cycle like Fast, but leaves the
// remainder of the cycle empty instead of repeating. Factors below one are
// clamped to one; non-positive factors are silence.
func fastGap[V any](factor cycle.Time, p Pattern[V]) Signal[V] {
	if factor.Sign() <= 0 {
		return Silence[V]()
	}
	if factor.Less(cycle.One) {
		factor = cycle.One
	}
	sp := From(p)

	return splitQueries(New(func(st State) []Event[V] {
		sam := st.Arc.Begin.Sam()
		next := sam.Add(cycle.One)

		// Forward: stretch the within-cycle position by factor, saturating
		// at the next cycle boundary so the gap region queries nothing.
		munge := func(t cycle.Time) cycle.Time {
			return sam.Add(cycle.One.Min(t.Sub(sam).Mul(factor)))
		}
		begin, end := munge(st.Arc.Begin), munge(st.Arc.End)
		if begin.Equal(next) {
			// The whole window lies inside the gap.
			return nil
		}

		evs := sp.Query(st.WithArc(cycle.NewArc(begin, end)))
		out := make([]Event[V], len(evs))
		for i, e := range evs {
			out[i] = e.withArcs(func(a cycle.Arc) cycle.Arc {
				return a.WithTime(func(t cycle.Time) cycle.Time {
					return sam.Add(t.Sub(sam).Div(factor))
				})
			})
		}

		return out
	}))
}

// Compress squeezes the pattern into the window [begin, end) of each cycle,
// leaving the rest of the cycle silent. Bounds outside [0, 1], inverted
// bounds, and a zero-width window are degenerate input and yield silence.
func Compress[V any](begin, end cycle.Time, p Pattern[V]) Signal[V] {
	if begin.Sign() < 0 || end.Greater(cycle.One) || begin.GreaterEq(end) {
		return Silence[V]()
	}

	return Late(begin, fastGap(cycle.One.Div(end.Sub(begin)), p))
}

// Focus maps the span [begin, end) of the pattern onto a full cycle without
// leaving a gap and without any bounds restriction — the warp underlying
// SqueezeBind. A zero-width or inverted span is silence.
func Focus[V any](begin, end cycle.Time, p Pattern[V]) Signal[V] {
	width := end.Sub(begin)
	if width.Sign() <= 0 {
		return Silence[V]()
	}

	return Late(begin.CyclePos(), Fast(cycle.One.Div(width), p))
}

// FocusArc is Focus over an arc value.
func FocusArc[V any](a cycle.Arc, p Pattern[V]) Signal[V] {
	return Focus(a.Begin, a.End, p)
}

// Zoom plays the span [begin, end) of each cycle of the pattern as if it
// were the whole cycle — the dual of Focus: it zooms into a portion of the
// pattern without displacing the pattern's own internal structure. A
// zero-width or inverted span is silence.
func Zoom[V any](begin, end cycle.Time, p Pattern[V]) Signal[V] {
	width := end.Sub(begin)
	if width.Sign() <= 0 {
		return Silence[V]()
	}
	sp := From(p)

	return splitQueries(New(func(st State) []Event[V] {
		window := st.Arc.CycleMap(func(t cycle.Time) cycle.Time {
			return t.Mul(width).Add(begin)
		})
		evs := sp.Query(st.WithArc(window))
		out := make([]Event[V], len(evs))
		for i, e := range evs {
			out[i] = e.withArcs(func(a cycle.Arc) cycle.Arc {
				return a.CycleMap(func(t cycle.Time) cycle.Time {
					return t.Sub(begin).Div(width)
				})
			})
		}

		return out
	}))
}

// Rev reflects each cycle of the pattern about its midpoint.
func Rev[V any](p Pattern[V]) Signal[V] {
	sp := From(p)

	return splitQueries(New(func(st State) []Event[V] {
		sam := st.Arc.Begin.Sam()
		next := st.Arc.Begin.NextSam()
		reflect := func(t cycle.Time) cycle.Time {
			return sam.Add(next.Sub(t))
		}
		// Reflection swaps the endpoints to keep arcs half-open forward.
		reflectArc := func(a cycle.Arc) cycle.Arc {
			return cycle.NewArc(reflect(a.End), reflect(a.Begin))
		}

		evs := sp.Query(st.WithArc(reflectArc(st.Arc)))
		out := make([]Event[V], len(evs))
		for i, e := range evs {
			out[i] = e.withArcs(reflectArc)
		}

		return out
	}))
}
