// Package signal_test contains shared fixtures and assertion helpers.
//
// Purpose:
//   - Render events into canonical strings so exact-rational extents can be
//     compared without poking at big.Rat internals.
//   - Compare query results as multisets (sorted string slices), matching
//     the algebra's "order carries no meaning" contract.

package signal_test

import (
	"sort"
	"testing"

	"github.com/ejconlon/Tidal/cycle"
	"github.com/ejconlon/Tidal/signal"
	"github.com/stretchr/testify/assert"
)

// ta builds the rational time n/d.
func ta(n, d int64) cycle.Time {
	return cycle.New(n, d)
}

// span builds the arc [bn/bd, en/ed).
func span(bn, bd, en, ed int64) cycle.Arc {
	return cycle.NewArc(cycle.New(bn, bd), cycle.New(en, ed))
}

// wholeCycles builds the integral arc [b, e).
func wholeCycles(b, e int64) cycle.Arc {
	return cycle.NewArc(cycle.FromInt(b), cycle.FromInt(e))
}

// render turns events into their canonical strings, sorted by active arc
// (then string for ties), so results compare as multisets in time order.
func render[V any](evs []signal.Event[V]) []string {
	sorted := make([]signal.Event[V], len(evs))
	copy(sorted, evs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].Active.Begin.Cmp(sorted[j].Active.Begin); c != 0 {
			return c < 0
		}
		if c := sorted[i].Active.End.Cmp(sorted[j].Active.End); c != 0 {
			return c < 0
		}

		return sorted[i].String() < sorted[j].String()
	})

	out := make([]string, len(sorted))
	for i, e := range sorted {
		out[i] = e.String()
	}

	return out
}

// query runs p over a and renders the result.
func query[V any](p signal.Pattern[V], a cycle.Arc) []string {
	return render(signal.From(p).QueryArc(a))
}

// assertSameEvents asserts that two patterns answer a window with the same
// event multiset.
func assertSameEvents[V any](t *testing.T, want, got signal.Pattern[V], a cycle.Arc, msg string) {
	t.Helper()
	assert.Equal(t, query(want, a), query(got, a), msg)
}

// abcd is the four-step test pattern used throughout.
func abcd() signal.Signal[string] {
	return signal.FastCat[string](
		signal.Atom("a"), signal.Atom("b"), signal.Atom("c"), signal.Atom("d"),
	)
}

// ab is the two-step test pattern.
func ab() signal.Signal[string] {
	return signal.FastCat[string](signal.Atom("a"), signal.Atom("b"))
}
