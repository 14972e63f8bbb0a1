// Package signal: pointwise combination — applying a pattern of functions
// to a pattern of values. The three variants differ only in their whole
// selection policy, and each policy seeds a different combinator family:
//
//   - AppBoth  — whole = intersection of both wholes, nil if either side is
//     continuous; both operands' structure contributes ("mix").
//   - AppLeft  — borrow-left: values are re-queried over each function
//     event's full extent and the function event's whole wins; the left
//     operand dictates structure.
//   - AppRight — the mirror image; the right operand dictates structure.

package signal

import "github.com/ejconlon/Tidal/cycle"

// sectWholes intersects two optional wholes: nil (continuous) absorbs.
func sectWholes(a, b *cycle.Arc) *cycle.Arc {
	if a == nil || b == nil {
		return nil
	}
	w := a.Sect(*b)

	return &w
}

// AppBoth applies each function event to each value event queried over the
// same window, keeping pairs whose active arcs intersect. The result's
// whole is the intersection of both wholes when both sides are discrete.
func AppBoth[A, B any](pf Pattern[func(A) B], pv Pattern[A]) Signal[B] {
	fs, vs := From(pf), From(pv)

	return New(func(st State) []Event[B] {
		var out []Event[B]
		for _, ef := range fs.Query(st) {
			for _, ev := range vs.Query(st) {
				active, ok := ef.Active.SectMaybe(ev.Active)
				if !ok {
					continue
				}
				out = append(out, Event[B]{
					Meta:   ef.Meta.Merge(ev.Meta),
					Whole:  sectWholes(ef.Whole, ev.Whole),
					Active: active,
					Value:  ef.Value(ev.Value),
				})
			}
		}

		return out
	})
}

// AppLeft applies functions to values with structure borrowed from the
// left: for every function event, the value pattern is re-queried over that
// event's whole-or-active extent, and the function event's whole is kept.
func AppLeft[A, B any](pf Pattern[func(A) B], pv Pattern[A]) Signal[B] {
	fs, vs := From(pf), From(pv)

	return New(func(st State) []Event[B] {
		var out []Event[B]
		for _, ef := range fs.Query(st) {
			for _, ev := range vs.Query(st.WithArc(ef.WholeOrActive())) {
				active, ok := ef.Active.SectMaybe(ev.Active)
				if !ok {
					continue
				}
				out = append(out, Event[B]{
					Meta:   ef.Meta.Merge(ev.Meta),
					Whole:  ef.Whole,
					Active: active,
					Value:  ef.Value(ev.Value),
				})
			}
		}

		return out
	})
}

// AppRight is the mirror of AppLeft: structure comes from the value
// pattern, and the function pattern is re-queried over each value event's
// whole-or-active extent.
func AppRight[A, B any](pf Pattern[func(A) B], pv Pattern[A]) Signal[B] {
	fs, vs := From(pf), From(pv)

	return New(func(st State) []Event[B] {
		var out []Event[B]
		for _, ev := range vs.Query(st) {
			for _, ef := range fs.Query(st.WithArc(ev.WholeOrActive())) {
				active, ok := ef.Active.SectMaybe(ev.Active)
				if !ok {
					continue
				}
				out = append(out, Event[B]{
					Meta:   ef.Meta.Merge(ev.Meta),
					Whole:  ev.Whole,
					Active: active,
					Value:  ef.Value(ev.Value),
				})
			}
		}

		return out
	})
}
