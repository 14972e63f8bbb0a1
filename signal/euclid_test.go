package signal_test

import (
	"testing"

	"github.com/ejconlon/Tidal/signal"
	"github.com/stretchr/testify/assert"
)

// TestStruct_TakesBooleanStructure: events appear only in the true slots,
// valued by sampling the value pattern over each slot.
func TestStruct_TakesBooleanStructure(t *testing.T) {
	rhythm := signal.FastCat[bool](
		signal.Atom(true), signal.Atom(false), signal.Atom(true), signal.Atom(false),
	)
	got := query[string](signal.Struct[string](rhythm, ab()), wholeCycles(0, 1))

	assert.Equal(t, []string{
		"whole:[0,1/4) active:[0,1/4) value:a",
		"whole:[1/2,3/4) active:[1/2,3/4) value:b",
	}, got)
}

// TestMask_KeepsValueStructure: the value pattern's own events survive or
// vanish whole, judged by the boolean pattern over their span.
func TestMask_KeepsValueStructure(t *testing.T) {
	window := signal.FastCat[bool](signal.Atom(true), signal.Atom(false))
	got := query[string](signal.Mask[string](window, abcd()), wholeCycles(0, 1))

	assert.Equal(t, []string{
		"whole:[0,1/4) active:[0,1/4) value:a",
		"whole:[1/4,1/2) active:[1/4,1/2) value:b",
	}, got)
}

// TestEuclid_Tresillo pins E(3,8): onsets at 0, 3/8 and 3/4, each an
// eighth-cycle slot.
func TestEuclid_Tresillo(t *testing.T) {
	got := query[string](signal.Euclid[string](3, 8, 0, signal.Atom("x")), wholeCycles(0, 1))

	assert.Equal(t, []string{
		"whole:[0,1/8) active:[0,1/8) value:x",
		"whole:[3/8,1/2) active:[3/8,1/2) value:x",
		"whole:[3/4,7/8) active:[3/4,7/8) value:x",
	}, got)
}

// TestEuclid_Rotation shifts the rhythm one step earlier, wrapping around
// the cycle.
func TestEuclid_Rotation(t *testing.T) {
	got := query[string](signal.Euclid[string](3, 8, 1, signal.Atom("x")), wholeCycles(0, 1))

	assert.Equal(t, []string{
		"whole:[1/4,3/8) active:[1/4,3/8) value:x",
		"whole:[5/8,3/4) active:[5/8,3/4) value:x",
		"whole:[7/8,1) active:[7/8,1) value:x",
	}, got)
}

// TestEuclid_DegenerateShapes: shapes the generator rejects are silence.
func TestEuclid_DegenerateShapes(t *testing.T) {
	window := wholeCycles(0, 1)

	assert.Empty(t, signal.Euclid[string](9, 8, 0, signal.Atom("x")).QueryArc(window))
	assert.Empty(t, signal.Euclid[string](-1, 8, 0, signal.Atom("x")).QueryArc(window))
	assert.Empty(t, signal.Euclid[string](3, 0, 0, signal.Atom("x")).QueryArc(window))
}

// TestEuclidInv_PlaysTheRests: the inverse fills exactly the slots Euclid
// leaves empty.
func TestEuclidInv_PlaysTheRests(t *testing.T) {
	window := wholeCycles(0, 1)

	assert.Len(t, signal.Euclid[string](3, 8, 0, signal.Atom("x")).QueryArc(window), 3)
	assert.Len(t, signal.EuclidInv[string](3, 8, 0, signal.Atom("x")).QueryArc(window), 5)

	together := signal.Stack[string](
		signal.Euclid[string](3, 8, 0, signal.Atom("x")),
		signal.EuclidInv[string](3, 8, 0, signal.Atom("x")),
	)
	eights := make([]signal.Pattern[string], 8)
	for i := range eights {
		eights[i] = signal.Atom("x")
	}
	assertSameEvents[string](t, signal.FastCat[string](eights...), together, window,
		"onsets plus rests tile the cycle")
}

// TestEuclid_StructuresArbitraryPatterns: the sampled value follows the
// value pattern across the rhythm's slots.
func TestEuclid_StructuresArbitraryPatterns(t *testing.T) {
	got := query[string](signal.Euclid[string](2, 4, 0, ab()), wholeCycles(0, 1))

	assert.Equal(t, []string{
		"whole:[0,1/4) active:[0,1/4) value:a",
		"whole:[1/2,3/4) active:[1/2,3/4) value:b",
	}, got)
}
