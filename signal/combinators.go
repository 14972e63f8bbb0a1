// Package signal: conditional and repetition combinators, derived purely
// from the Pattern contract and the primitives — nothing here queries
// events by hand.

package signal

import "github.com/ejconlon/Tidal/cycle"

// Transform is a pattern-to-pattern function used by the conditional
// combinators. Combinators such as Rev, or any closure over them, fit
// directly.
type Transform[V any] func(p Pattern[V]) Signal[V]

// When samples the boolean pattern and substitutes f(p) wherever it is
// true, p itself wherever it is false, under the default join discipline.
func When[V any](b Pattern[bool], f Transform[V], p Pattern[V]) Signal[V] {
	if f == nil {
		return From(p)
	}
	on, off := f(p), From(p)

	return Bind(b, func(v bool) Signal[V] {
		if v {
			return on
		}

		return off
	})
}

// WhenCycle applies f at the query level on cycles whose index satisfies
// test, querying the untouched pattern otherwise. This is the basis for
// Every/FirstOf/LastOf-style cycle scheduling.
func WhenCycle[V any](test func(cycleIndex int64) bool, f Transform[V], p Pattern[V]) Signal[V] {
	if test == nil || f == nil {
		return From(p)
	}
	on, off := f(p), From(p)

	return splitQueries(New(func(st State) []Event[V] {
		if test(st.Arc.Begin.CycleIndex()) {
			return on.Query(st)
		}

		return off.Query(st)
	}))
}

// cycleIndicator is true on cycle `which` out of every n, false elsewhere.
func cycleIndicator(n, which int) Signal[bool] {
	flags := make([]Pattern[bool], n)
	for i := range flags {
		flags[i] = Atom(i == which)
	}

	return Cat(flags...)
}

// FirstOf applies f on the first cycle out of every n. Non-positive n
// leaves the pattern untouched.
func FirstOf[V any](n int, f Transform[V], p Pattern[V]) Signal[V] {
	if n <= 0 || f == nil {
		return From(p)
	}

	return When(cycleIndicator(n, 0), f, p)
}

// LastOf applies f on the last cycle out of every n.
func LastOf[V any](n int, f Transform[V], p Pattern[V]) Signal[V] {
	if n <= 0 || f == nil {
		return From(p)
	}

	return When(cycleIndicator(n, n-1), f, p)
}

// Every applies f once every n cycles, on the first of each group.
func Every[V any](n int, f Transform[V], p Pattern[V]) Signal[V] {
	return FirstOf(n, f, p)
}

// Palindrome alternates the pattern with its reverse on successive cycles.
func Palindrome[V any](p Pattern[V]) Signal[V] {
	return Cat[V](From(p), Rev(p))
}

// Ply replaces each discrete event with factor repetitions of its value
// compressed into the event's own extent.
func Ply[V any](factor cycle.Time, p Pattern[V]) Signal[V] {
	return SqueezeBind(p, func(v V) Signal[V] { return Fast(factor, Atom(v)) })
}

// Segment samples the pattern at n evenly spaced slots per cycle, taking
// the midpoint sample for each slot — the usual way to discretize a
// continuous waveform.
func Segment[V any](n cycle.Time, p Pattern[V]) Signal[V] {
	ident := Fast(n, Atom(func(v V) V { return v }))

	return AppLeft[V, V](ident, p)
}

// Inside speeds the pattern down by n, applies f, and speeds the result
// back up — f sees n cycles where one used to be.
func Inside[V any](n cycle.Time, f Transform[V], p Pattern[V]) Signal[V] {
	if f == nil {
		return From(p)
	}
	if n.Sign() == 0 {
		return Silence[V]()
	}

	return Fast(n, f(Slow(n, p)))
}

// Outside is the inverse of Inside: f sees one cycle where n used to be.
func Outside[V any](n cycle.Time, f Transform[V], p Pattern[V]) Signal[V] {
	if f == nil {
		return From(p)
	}
	if n.Sign() == 0 {
		return Silence[V]()
	}

	return Inside(cycle.One.Div(n), f, p)
}

// Iter shifts the pattern a step of 1/n earlier on each successive cycle,
// cycling through all n phases.
func Iter[V any](n int, p Pattern[V]) Signal[V] {
	if n <= 0 {
		return From(p)
	}
	phases := make([]Pattern[V], n)
	for i := 0; i < n; i++ {
		phases[i] = Early(cycle.New(int64(i), int64(n)), p)
	}

	return Cat(phases...)
}

// IterBack is Iter in the other direction.
func IterBack[V any](n int, p Pattern[V]) Signal[V] {
	if n <= 0 {
		return From(p)
	}
	phases := make([]Pattern[V], n)
	for i := 0; i < n; i++ {
		phases[i] = Late(cycle.New(int64(i), int64(n)), p)
	}

	return Cat(phases...)
}
