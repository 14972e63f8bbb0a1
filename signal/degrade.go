// Package signal: the probabilistic boundary. The core's only contract
// with randomness is a function from a time position to a stable value in
// [0,1); everything probabilistic is deterministic per query position, so
// referential transparency survives and repeated queries agree.

package signal

import "github.com/ejconlon/Tidal/cycle"

// RandSource maps a time position to a stable pseudorandom value in [0,1).
// The same position must always yield the same value.
type RandSource func(t cycle.Time) float64

// randGrain quantizes positions before hashing, so values are stable within
// a 2^-29 cycle neighbourhood — far below any audible subdivision.
const randGrain = 1 << 29

// TimeRand is the default RandSource: an xorshift hash of the position.
func TimeRand(t cycle.Time) float64 {
	x := uint64(t.Mul(cycle.FromInt(randGrain)).CycleIndex())
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17

	return float64(x%randGrain) / float64(randGrain)
}

// Rand is the default random source as a continuous waveform.
func Rand() Signal[float64] {
	return Waveform(TimeRand)
}

// DegradeBy drops each event with probability prob, judged by sampling src
// at the midpoint of the event's full extent: the event survives when the
// sample is at least prob. A nil src uses TimeRand. prob <= 0 keeps
// everything; prob >= 1 is silence.
func DegradeBy[V any](prob float64, src RandSource, p Pattern[V]) Signal[V] {
	if prob <= 0 {
		return From(p)
	}
	if prob >= 1 {
		return Silence[V]()
	}
	if src == nil {
		src = TimeRand
	}

	return FilterEvents(p, func(e Event[V]) bool {
		return src(e.WholeOrActive().Midpoint()) >= prob
	})
}

// UndegradeBy keeps exactly the events DegradeBy(prob, src, p) drops, so
// the two partition the pattern: stacking them restores it.
func UndegradeBy[V any](prob float64, src RandSource, p Pattern[V]) Signal[V] {
	if prob <= 0 {
		return Silence[V]()
	}
	if prob >= 1 {
		return From(p)
	}
	if src == nil {
		src = TimeRand
	}

	return FilterEvents(p, func(e Event[V]) bool {
		return src(e.WholeOrActive().Midpoint()) < prob
	})
}

// Degrade drops roughly half the events using the default source.
func Degrade[V any](p Pattern[V]) Signal[V] {
	return DegradeBy(0.5, nil, p)
}

// Undegrade keeps exactly the events Degrade drops.
func Undegrade[V any](p Pattern[V]) Signal[V] {
	return UndegradeBy(0.5, nil, p)
}
