// Package signal: structural concatenation — layering patterns on top of
// each other (Stack) and stringing them out in time (Cat, FastCat, TimeCat).

package signal

import "github.com/ejconlon/Tidal/cycle"

// Stack layers patterns: the result of a query is the multiset union of
// every constituent's result over the same state. Order carries no meaning.
func Stack[V any](pats ...Pattern[V]) Signal[V] {
	sigs := make([]Signal[V], len(pats))
	for i, p := range pats {
		sigs[i] = From(p)
	}

	return New(func(st State) []Event[V] {
		var out []Event[V]
		for _, s := range sigs {
			out = append(out, s.Query(st)...)
		}

		return out
	})
}

// Overlay layers two independently-defined patterns; it is Stack spelled
// for the common two-signal merge.
func Overlay[V any](a, b Pattern[V]) Signal[V] {
	return Stack(a, b)
}

// Cat concatenates patterns cycle by cycle, round-robin: cycle n plays
// child n mod len. Each child is shifted so it perceives its own cumulative
// cycle count — child i's kth turn looks like the child's cycle k.
func Cat[V any](pats ...Pattern[V]) Signal[V] {
	if len(pats) == 0 {
		return Silence[V]()
	}
	sigs := make([]Signal[V], len(pats))
	for i, p := range pats {
		sigs[i] = From(p)
	}
	n := int64(len(sigs))

	return splitQueries(New(func(st State) []Event[V] {
		cyc := st.Arc.Begin.CycleIndex()
		offset := cycle.FromInt(cyc - floorDiv(cyc, n))
		child := sigs[floorMod(cyc, n)]

		local := st.Arc.WithTime(func(t cycle.Time) cycle.Time { return t.Sub(offset) })
		evs := child.Query(st.WithArc(local))
		out := make([]Event[V], len(evs))
		for i, e := range evs {
			out[i] = e.withArcs(func(a cycle.Arc) cycle.Arc {
				return a.WithTime(func(t cycle.Time) cycle.Time { return t.Add(offset) })
			})
		}

		return out
	}))
}

// FastCat concatenates patterns inside a single cycle, each child squashed
// into an equal share.
func FastCat[V any](pats ...Pattern[V]) Signal[V] {
	if len(pats) == 0 {
		return Silence[V]()
	}

	return Fast(cycle.FromInt(int64(len(pats))), Cat(pats...))
}

// Weighted pairs a pattern with the share of the cycle it should occupy.
type Weighted[V any] struct {
	Weight  cycle.Time
	Pattern Pattern[V]
}

// Weigh builds a Weighted part; a convenience for TimeCat call sites.
func Weigh[V any](weight cycle.Time, p Pattern[V]) Weighted[V] {
	return Weighted[V]{Weight: weight, Pattern: p}
}

// TimeCat concatenates parts inside one cycle with widths proportional to
// their weights, via repeated Compress. Parts with non-positive weights are
// skipped quietly; if nothing remains the result is silence.
func TimeCat[V any](parts ...Weighted[V]) Signal[V] {
	total := cycle.Zero
	for _, part := range parts {
		if part.Weight.Sign() > 0 {
			total = total.Add(part.Weight)
		}
	}
	if total.Sign() == 0 {
		return Silence[V]()
	}

	layers := make([]Pattern[V], 0, len(parts))
	acc := cycle.Zero
	for _, part := range parts {
		if part.Weight.Sign() <= 0 {
			continue
		}
		begin := acc.Div(total)
		acc = acc.Add(part.Weight)
		end := acc.Div(total)
		layers = append(layers, Compress(begin, end, part.Pattern))
	}

	return Stack(layers...)
}

// Run counts 0..n-1 across one cycle. Non-positive n is silence.
func Run(n int) Signal[int] {
	if n <= 0 {
		return Silence[int]()
	}
	atoms := make([]Pattern[int], n)
	for i := range atoms {
		atoms[i] = Atom(i)
	}

	return FastCat(atoms...)
}

// Scan plays Run(1), Run(2), ... Run(n) on successive cycles.
func Scan(n int) Signal[int] {
	if n <= 0 {
		return Silence[int]()
	}
	runs := make([]Pattern[int], n)
	for i := range runs {
		runs[i] = Run(i + 1)
	}

	return Cat(runs...)
}

// floorDiv divides rounding toward -∞ so negative cycles index correctly.
func floorDiv(a, n int64) int64 {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}

	return q
}

// floorMod is the non-negative remainder matching floorDiv.
func floorMod(a, n int64) int64 {
	return a - floorDiv(a, n)*n
}
