// Package signal: boolean structure transfer and Euclidean rhythms.

package signal

import (
	"github.com/ejconlon/Tidal/cycle"
	"github.com/ejconlon/Tidal/euclid"
)

// gate carries a value together with the boolean that decides its fate;
// Struct and Mask combine first, filter second.
type gate[V any] struct {
	value V
	open  bool
}

// Struct gives the value pattern the boolean pattern's structure: one event
// per true slot, valued by sampling p over that slot.
func Struct[V any](b Pattern[bool], p Pattern[V]) Signal[V] {
	holders := FMap(b, func(open bool) func(V) gate[V] {
		return func(v V) gate[V] { return gate[V]{value: v, open: open} }
	})
	combined := AppLeft[V, gate[V]](holders, p)
	kept := FilterEvents(combined, func(e Event[gate[V]]) bool { return e.Value.open })

	return FMap[gate[V], V](kept, func(g gate[V]) V { return g.value })
}

// Mask keeps the value pattern's own structure, silencing the events whose
// span samples the boolean pattern as false.
func Mask[V any](b Pattern[bool], p Pattern[V]) Signal[V] {
	holders := FMap(p, func(v V) func(bool) gate[V] {
		return func(open bool) gate[V] { return gate[V]{value: v, open: open} }
	})
	combined := AppLeft[bool, gate[V]](holders, b)
	kept := FilterEvents(combined, func(e Event[gate[V]]) bool { return e.Value.open })

	return FMap[gate[V], V](kept, func(g gate[V]) V { return g.value })
}

// boolSteps lays bits out as one cycle of equal steps.
func boolSteps(bits []bool) Signal[bool] {
	atoms := make([]Pattern[bool], len(bits))
	for i, on := range bits {
		atoms[i] = Atom(on)
	}

	return FastCat(atoms...)
}

// Euclid plays p on the onsets of the (pulses, steps) Euclidean rhythm,
// rotated rotation steps earlier. The rotation is a time shift of
// rotation/steps rather than an index rotation, so fractional phase
// relationships with other patterns stay exact. Shapes the generator
// rejects are degenerate input and yield silence.
func Euclid[V any](pulses, steps, rotation int, p Pattern[V]) Signal[V] {
	bits, err := euclid.Bjorklund(pulses, steps)
	if err != nil {
		return Silence[V]()
	}
	rhythm := boolSteps(bits)
	if rotation != 0 {
		rhythm = Early(cycle.New(int64(rotation), int64(steps)), rhythm)
	}

	return Struct(rhythm, p)
}

// EuclidInv plays p on the rests of the Euclidean rhythm instead of the
// onsets.
func EuclidInv[V any](pulses, steps, rotation int, p Pattern[V]) Signal[V] {
	bits, err := euclid.Bjorklund(pulses, steps)
	if err != nil {
		return Silence[V]()
	}
	for i := range bits {
		bits[i] = !bits[i]
	}
	rhythm := boolSteps(bits)
	if rotation != 0 {
		rhythm = Early(cycle.New(int64(rotation), int64(steps)), rhythm)
	}

	return Struct(rhythm, p)
}
