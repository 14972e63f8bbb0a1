// Package signal: the Signal core — the opaque query function, the Pattern
// capability contract, and the primitive constructors everything else is
// derived from.

package signal

import "github.com/ejconlon/Tidal/cycle"

// Pattern is the minimal contract a time-indexed pattern representation
// must satisfy: answer a query with the events inside its window. The whole
// combinator library is defined against this interface and never against a
// concrete representation; Signal is the continuous-query implementation.
type Pattern[V any] interface {
	Query(st State) []Event[V]
}

// Signal is an immutable pattern of values: a pure function from State to
// events. Signals are constructed once by composition and queried any
// number of times, over any arcs, from any goroutine. The zero value is
// silence.
type Signal[V any] struct {
	query func(st State) []Event[V]
}

// New wraps a query function into a Signal. The function must be pure:
// same State in, same events out — that invariant is what keeps every
// combinator composable and re-evaluation safe.
func New[V any](query func(st State) []Event[V]) Signal[V] {
	return Signal[V]{query: query}
}

// Query evaluates the signal over the state's window. It is total: the zero
// Signal answers with no events.
func (s Signal[V]) Query(st State) []Event[V] {
	if s.query == nil {
		return nil
	}

	return s.query(st)
}

// QueryArc evaluates the signal over a bare arc with no controls. This is
// the entry point schedulers call on every tick.
func (s Signal[V]) QueryArc(a cycle.Arc) []Event[V] {
	return s.Query(State{Arc: a})
}

// From adapts any Pattern into a Signal, reusing the value when it already
// is one. A nil pattern is silence. Combinators normalize their inputs with
// From once, at construction time.
func From[V any](p Pattern[V]) Signal[V] {
	if p == nil {
		return Signal[V]{}
	}
	if s, ok := p.(Signal[V]); ok {
		return s
	}

	return New(p.Query)
}

// Silence is the empty pattern: no events over any window.
func Silence[V any]() Signal[V] {
	return Signal[V]{}
}

// Atom repeats one discrete event per cycle: whole = the event's cycle,
// active clipped to the query window.
func Atom[V any](v V) Signal[V] {
	return splitQueries(New(func(st State) []Event[V] {
		whole := st.Arc.WholeCycle()

		return []Event[V]{{Whole: &whole, Active: st.Arc, Value: v}}
	}))
}

// Waveform lifts a pure function of cycle time into a continuous signal:
// each query answers with a single whole-less event spanning the window,
// valued at the window's midpoint. Zero-width query arcs sample the exact
// point.
func Waveform[V any](f func(t cycle.Time) V) Signal[V] {
	return New(func(st State) []Event[V] {
		return []Event[V]{{Active: st.Arc, Value: f(st.Arc.Midpoint())}}
	})
}

// Steady is the constant continuous signal.
func Steady[V any](v V) Signal[V] {
	return Waveform(func(cycle.Time) V { return v })
}

// FMap maps f over every event value, leaving timing and metadata alone.
func FMap[A, B any](p Pattern[A], f func(A) B) Signal[B] {
	sp := From(p)

	return New(func(st State) []Event[B] {
		evs := sp.Query(st)
		out := make([]Event[B], len(evs))
		for i, e := range evs {
			out[i] = Event[B]{Meta: e.Meta, Whole: e.Whole, Active: e.Active, Value: f(e.Value)}
		}

		return out
	})
}

// FilterEvents keeps only the events for which keep answers true. A nil
// predicate keeps everything.
func FilterEvents[V any](p Pattern[V], keep func(e Event[V]) bool) Signal[V] {
	sp := From(p)
	if keep == nil {
		return sp
	}

	return New(func(st State) []Event[V] {
		var out []Event[V]
		for _, e := range sp.Query(st) {
			if keep(e) {
				out = append(out, e)
			}
		}

		return out
	})
}

// FilterValues keeps only the events whose value satisfies keep.
func FilterValues[V any](p Pattern[V], keep func(v V) bool) Signal[V] {
	if keep == nil {
		return From(p)
	}

	return FilterEvents(p, func(e Event[V]) bool { return keep(e.Value) })
}

// splitQueries makes per-cycle rules apply correctly to multi-cycle
// windows: the wrapped signal only ever sees queries confined to a single
// cycle. Decomposition iterates over cycles, it does not recurse, so query
// width never deepens the stack.
func splitQueries[V any](s Signal[V]) Signal[V] {
	return New(func(st State) []Event[V] {
		parts := st.Arc.SplitCycles()
		if len(parts) == 1 {
			return s.Query(st.WithArc(parts[0]))
		}

		var out []Event[V]
		for _, part := range parts {
			out = append(out, s.Query(st.WithArc(part))...)
		}

		return out
	})
}
