// Package signal: join disciplines — the four ways to flatten a pattern
// whose values are themselves patterns. All share one loop: query the outer
// pattern, derive an inner pattern per event, query it inside the outer
// event's active window, and emit with merged metadata. They differ only in
// whose whole survives and in how inner time relates to outer time:
//
//   - Bind / Join           — whole = intersection of outer and inner.
//   - InnerBind / InnerJoin — the inner pattern's identity wins (the
//     standard discipline for most derived combinators).
//   - OuterBind / OuterJoin — the outer event's identity wins.
//   - SqueezeBind           — one full cycle of the inner pattern is warped
//     to exactly fill the outer event's extent.
//   - TrigBind / TrigZeroBind — the inner pattern is restarted at each
//     outer onset (modulo a cycle, or from its absolute time zero).

package signal

import "github.com/ejconlon/Tidal/cycle"

// bindWith is the shared sequencing loop; choose picks the surviving whole
// from the outer and inner candidates.
func bindWith[A, B any](p Pattern[A], f func(v A) Signal[B], choose func(outer, inner *cycle.Arc) *cycle.Arc) Signal[B] {
	sp := From(p)

	return New(func(st State) []Event[B] {
		var out []Event[B]
		for _, oe := range sp.Query(st) {
			for _, ie := range f(oe.Value).Query(st.WithArc(oe.Active)) {
				out = append(out, Event[B]{
					Meta:   oe.Meta.Merge(ie.Meta),
					Whole:  choose(oe.Whole, ie.Whole),
					Active: ie.Active,
					Value:  ie.Value,
				})
			}
		}

		return out
	})
}

// Bind sequences f over p with the default discipline: the result's whole
// is the intersection of the outer and inner wholes, continuous if either
// side is continuous.
func Bind[A, B any](p Pattern[A], f func(v A) Signal[B]) Signal[B] {
	return bindWith(p, f, sectWholes)
}

// InnerBind sequences f over p keeping the inner pattern's wholes, letting
// the substituted pattern's own event identity win.
func InnerBind[A, B any](p Pattern[A], f func(v A) Signal[B]) Signal[B] {
	return bindWith(p, f, func(_, inner *cycle.Arc) *cycle.Arc { return inner })
}

// OuterBind sequences f over p keeping the outer events' wholes.
func OuterBind[A, B any](p Pattern[A], f func(v A) Signal[B]) Signal[B] {
	return bindWith(p, f, func(outer, _ *cycle.Arc) *cycle.Arc { return outer })
}

// SqueezeBind warps one full cycle of each derived inner pattern onto the
// outer event's whole-or-active extent, so an outer value is replaced
// wholesale by a sub-pattern rendered at full resolution inside its slot.
// Wholes and actives are intersected, metadata concatenated.
func SqueezeBind[A, B any](p Pattern[A], f func(v A) Signal[B]) Signal[B] {
	sp := From(p)

	return New(func(st State) []Event[B] {
		var out []Event[B]
		for _, oe := range sp.Query(st) {
			inner := FocusArc(oe.WholeOrActive(), f(oe.Value))
			for _, ie := range inner.Query(st.WithArc(oe.Active)) {
				active, ok := ie.Active.SectMaybe(oe.Active)
				if !ok {
					continue
				}
				out = append(out, Event[B]{
					Meta:   oe.Meta.Merge(ie.Meta),
					Whole:  sectWholes(oe.Whole, ie.Whole),
					Active: active,
					Value:  ie.Value,
				})
			}
		}

		return out
	})
}

// trigBind restarts each derived inner pattern at the outer event's onset.
// Continuous outer events carry no onset and are dropped. With absolute set
// the inner pattern restarts from its own time zero; otherwise the shift is
// taken modulo a cycle so the inner pattern restarts on a local cycle
// boundary, keeping its cycle count aligned with global time.
func trigBind[A, B any](p Pattern[A], f func(v A) Signal[B], absolute bool) Signal[B] {
	sp := From(p)

	return New(func(st State) []Event[B] {
		var out []Event[B]
		for _, oe := range sp.Query(st) {
			if oe.Whole == nil {
				continue
			}
			shift := oe.Whole.Begin
			if !absolute {
				shift = shift.CyclePos()
			}
			inner := Late(shift, f(oe.Value))
			for _, ie := range inner.Query(st.WithArc(oe.Active)) {
				active, ok := ie.Active.SectMaybe(oe.Active)
				if !ok {
					continue
				}
				out = append(out, Event[B]{
					Meta:   oe.Meta.Merge(ie.Meta),
					Whole:  sectWholes(oe.Whole, ie.Whole),
					Active: active,
					Value:  ie.Value,
				})
			}
		}

		return out
	})
}

// TrigBind re-triggers each derived inner pattern in sync with the outer
// onsets, shifted modulo one cycle: the inner pattern restarts at local
// cycle zero on every onset.
func TrigBind[A, B any](p Pattern[A], f func(v A) Signal[B]) Signal[B] {
	return trigBind(p, f, false)
}

// TrigZeroBind re-triggers each derived inner pattern from its absolute
// time zero at every outer onset.
func TrigZeroBind[A, B any](p Pattern[A], f func(v A) Signal[B]) Signal[B] {
	return trigBind(p, f, true)
}

// Join flattens a pattern of signals with the default whole discipline.
func Join[V any](pp Pattern[Signal[V]]) Signal[V] {
	return Bind(pp, func(s Signal[V]) Signal[V] { return s })
}

// InnerJoin flattens keeping inner wholes.
func InnerJoin[V any](pp Pattern[Signal[V]]) Signal[V] {
	return InnerBind(pp, func(s Signal[V]) Signal[V] { return s })
}

// OuterJoin flattens keeping outer wholes.
func OuterJoin[V any](pp Pattern[Signal[V]]) Signal[V] {
	return OuterBind(pp, func(s Signal[V]) Signal[V] { return s })
}

// SqueezeJoin flattens by squeezing each inner signal into its outer slot.
func SqueezeJoin[V any](pp Pattern[Signal[V]]) Signal[V] {
	return SqueezeBind(pp, func(s Signal[V]) Signal[V] { return s })
}

// TrigJoin flattens by re-triggering inner signals at outer onsets, modulo
// one cycle.
func TrigJoin[V any](pp Pattern[Signal[V]]) Signal[V] {
	return TrigBind(pp, func(s Signal[V]) Signal[V] { return s })
}

// TrigZeroJoin flattens by re-triggering inner signals from absolute zero
// at outer onsets.
func TrigZeroJoin[V any](pp Pattern[Signal[V]]) Signal[V] {
	return TrigZeroBind(pp, func(s Signal[V]) Signal[V] { return s })
}
