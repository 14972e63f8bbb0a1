// Package signal is the query engine of the pattern language: composable,
// time-indexed event generators that are sampled on demand instead of
// rendered eagerly.
//
// 🚀 What is a Signal?
//
//	A Signal[V] wraps a single pure function from a query State (an Arc of
//	cycle time plus opaque controls) to a slice of Event[V]. Everything else
//	is combinators layered on that function:
//	  • Primitives: Silence, Atom, Steady, Waveform, Stack, Cat, Fast, Rev
//	  • Pointwise combination: AppBoth, AppLeft, AppRight
//	  • Join disciplines: Bind, InnerBind, OuterBind, SqueezeBind,
//	    TrigBind, TrigZeroBind (and their Join spellings)
//	  • Time remapping: Fast/Slow, Early/Late, Compress, Focus, Zoom, Rev
//	  • Structure: FastCat, TimeCat, Run, Scan, Every, When, Ply, Segment,
//	    Iter, Palindrome, Euclid, Struct, Mask, Degrade
//	  • Waveforms: Saw, Tri, Square, Sine, EnvL and friends
//
// ✨ Guarantees
//
//   - Referential transparency: a Signal holds no mutable state and no
//     cache; the same State always yields the same events, so any Signal
//     may be queried from any number of goroutines concurrently.
//   - Totality: queries never fail. Degenerate constructor input (inverted
//     compress bounds, zero rates, bad Euclidean shapes) is neutralized to
//     Silence at construction time — a live performance must never crash.
//   - Exact time: all event and query arithmetic runs on cycle.Time
//     rationals; floats appear only as waveform values.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/ejconlon/Tidal/cycle"
//	  "github.com/ejconlon/Tidal/signal"
//	)
//
//	p := signal.Every(2, signal.Rev[string],
//	  signal.FastCat[string](signal.Atom("bd"), signal.Atom("sn")))
//	events := p.QueryArc(cycle.NewArc(cycle.Zero, cycle.FromInt(2)))
//
// The minimal capability contract is the Pattern[V] interface: anything
// that can answer Query(State) participates in the full combinator library.
// Combinators accept Pattern[V] and return the concrete Signal[V].
//
// Downstream layers (parser, scheduler, output) talk to this package only
// through the constructors and Query; see Event.Whole/Active for how they
// map results onto timed messages.
package signal
