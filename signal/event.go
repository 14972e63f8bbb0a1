// Package signal: the event model — what a query returns.
// This file declares Meta (the mergeable annotation multiset), Event[V]
// (value + extents), and State (the query window plus opaque controls).

package signal

import (
	"fmt"

	"github.com/ejconlon/Tidal/cycle"
)

// Meta is an order-irrelevant bag of annotations carried by events and
// merged whenever two events combine. It has no meaning to the algebra
// itself; parsers and schedulers use it for provenance (source positions,
// voice tags). Values under one key form a multiset: merging appends.
type Meta map[string][]string

// Merge combines two annotation bags without mutating either. Empty bags
// are returned as-is so the common no-metadata path allocates nothing.
func (m Meta) Merge(o Meta) Meta {
	if len(m) == 0 {
		return o
	}
	if len(o) == 0 {
		return m
	}

	merged := make(Meta, len(m)+len(o))
	for k, vs := range m {
		merged[k] = append([]string(nil), vs...)
	}
	for k, vs := range o {
		merged[k] = append(merged[k], vs...)
	}

	return merged
}

// Event is one query result: a value placed on the time line.
//
// Active is the part of the event inside the current query window, always
// non-empty relative to the window. Whole, when present, is the event's
// full un-clipped extent — its identity across repeated or split queries;
// Active ⊆ Whole holds whenever Whole is non-nil. A nil Whole marks a
// continuous sample with no onset or offset.
type Event[V any] struct {
	Meta   Meta
	Whole  *cycle.Arc
	Active cycle.Arc
	Value  V
}

// WholeOrActive returns the full extent when the event is discrete and the
// active arc otherwise. Join disciplines query sub-patterns over this span.
func (e Event[V]) WholeOrActive() cycle.Arc {
	if e.Whole != nil {
		return *e.Whole
	}

	return e.Active
}

// HasOnset reports whether the event's onset falls inside the query window,
// i.e. the active arc starts exactly where the whole does. Schedulers use
// this to distinguish "starts now" from "already sounding".
func (e Event[V]) HasOnset() bool {
	return e.Whole != nil && e.Whole.Begin.Equal(e.Active.Begin)
}

// withArcs returns a copy of the event with f applied to the active arc and
// (when present) the whole. Time remapping operators map results with it.
func (e Event[V]) withArcs(f func(cycle.Arc) cycle.Arc) Event[V] {
	out := e
	out.Active = f(e.Active)
	if e.Whole != nil {
		w := f(*e.Whole)
		out.Whole = &w
	}

	return out
}

// String renders the event deterministically; a continuous sample shows its
// missing whole as "~".
func (e Event[V]) String() string {
	whole := "~"
	if e.Whole != nil {
		whole = e.Whole.String()
	}

	return fmt.Sprintf("whole:%s active:%s value:%v", whole, e.Active, e.Value)
}

// State is a query: the window to sample plus named controls. Controls are
// opaque to this package — combinators thread them through unchanged so
// external named-parameter lookups can read them downstream.
type State struct {
	Arc      cycle.Arc
	Controls map[string]any
}

// WithArc returns the state with the query window replaced and the controls
// carried along untouched.
func (s State) WithArc(a cycle.Arc) State {
	s.Arc = a

	return s
}
