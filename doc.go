// Package tidal is a temporal pattern-query engine: a library of
// composable, time-indexed event generators that describe rhythmic and
// musical structure, sampled on demand rather than generated eagerly.
//
// 🚀 What is Tidal?
//
//	A pure, thread-safe pattern algebra built on three small packages:
//		• cycle/  — exact-rational Time, half-open Arc intervals, and
//		  per-cycle decomposition (no floating-point time, ever)
//		• signal/ — the Signal query function, its event/interval algebra,
//		  pointwise combination, four join disciplines, time remapping,
//		  the structural combinator library, and continuous waveforms
//		• euclid/ — Bjorklund's maximally-even pulse generator
//
// ✨ Why this design?
//
//   - Signals are immutable pure functions — the same query always yields
//     the same events, so composition nests without bound and concurrent
//     queries are safe by construction
//   - Fail quiet, never loud — degenerate input collapses to silence,
//     because the consuming context is a live performance
//   - Minimal capability contract — the combinator library is written
//     against the Pattern interface, never against one representation
//
// Quick example:
//
//	p := signal.Every(2, signal.Rev[string],
//	  signal.FastCat[string](signal.Atom("bd"), signal.Atom("sn")))
//	events := p.QueryArc(cycle.NewArc(cycle.Zero, cycle.FromInt(4)))
//
// Scheduling, audio output, and the mini-notation parser live outside this
// module; they talk to it through the constructors and Query alone.
//
//	go get github.com/ejconlon/Tidal
package tidal
