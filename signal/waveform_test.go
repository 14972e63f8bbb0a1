package signal_test

import (
	"testing"

	"github.com/ejconlon/Tidal/cycle"
	"github.com/ejconlon/Tidal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleAt evaluates a continuous signal at a single position.
func sampleAt(t *testing.T, s signal.Signal[float64], pos cycle.Time) float64 {
	t.Helper()
	evs := s.QueryArc(cycle.Point(pos))
	require.Len(t, evs, 1)
	require.Nil(t, evs[0].Whole, "waveform events must be continuous")

	return evs[0].Value
}

// TestSaw_RampsUp: value equals cycle position, in every cycle.
func TestSaw_RampsUp(t *testing.T) {
	assert.InDelta(t, 0.0, sampleAt(t, signal.Saw(), ta(0, 1)), 1e-12)
	assert.InDelta(t, 0.25, sampleAt(t, signal.Saw(), ta(1, 4)), 1e-12)
	assert.InDelta(t, 0.25, sampleAt(t, signal.Saw(), ta(9, 4)), 1e-12)
	assert.InDelta(t, 0.75, sampleAt(t, signal.Saw(), ta(-1, 4)), 1e-12)
}

// TestISaw_RampsDown is the mirror ramp.
func TestISaw_RampsDown(t *testing.T) {
	assert.InDelta(t, 1.0, sampleAt(t, signal.ISaw(), ta(0, 1)), 1e-12)
	assert.InDelta(t, 0.75, sampleAt(t, signal.ISaw(), ta(1, 4)), 1e-12)
}

// TestTri_RisesThenFalls peaks mid-cycle.
func TestTri_RisesThenFalls(t *testing.T) {
	assert.InDelta(t, 0.25, sampleAt(t, signal.Tri(), ta(1, 8)), 1e-12)
	assert.InDelta(t, 1.0, sampleAt(t, signal.Tri(), ta(1, 2)), 1e-12)
	assert.InDelta(t, 0.5, sampleAt(t, signal.Tri(), ta(3, 4)), 1e-12)
}

// TestSquare_FlipsMidCycle: low first half, high second half.
func TestSquare_FlipsMidCycle(t *testing.T) {
	assert.Equal(t, 0.0, sampleAt(t, signal.Square(), ta(1, 4)))
	assert.Equal(t, 1.0, sampleAt(t, signal.Square(), ta(3, 4)))
}

// TestSineCosine_Phases pins the unipolar phase conventions.
func TestSineCosine_Phases(t *testing.T) {
	assert.InDelta(t, 0.5, sampleAt(t, signal.Sine(), ta(0, 1)), 1e-12)
	assert.InDelta(t, 1.0, sampleAt(t, signal.Sine(), ta(1, 4)), 1e-12)
	assert.InDelta(t, 0.0, sampleAt(t, signal.Sine(), ta(3, 4)), 1e-12)
	assert.InDelta(t, 1.0, sampleAt(t, signal.Cosine(), ta(0, 1)), 1e-12)
	assert.InDelta(t, 0.0, sampleAt(t, signal.Cosine(), ta(1, 2)), 1e-12)
}

// TestEnvelopes_ClampOutsideCycleZero: EnvL and EnvR ramp over cycle zero
// and hold beyond it, in both directions.
func TestEnvelopes_ClampOutsideCycleZero(t *testing.T) {
	assert.InDelta(t, 0.5, sampleAt(t, signal.EnvL(), ta(1, 2)), 1e-12)
	assert.Equal(t, 0.0, sampleAt(t, signal.EnvL(), ta(-3, 1)))
	assert.Equal(t, 1.0, sampleAt(t, signal.EnvL(), ta(5, 1)))

	assert.InDelta(t, 0.5, sampleAt(t, signal.EnvR(), ta(1, 2)), 1e-12)
	assert.Equal(t, 1.0, sampleAt(t, signal.EnvR(), ta(-3, 1)))
	assert.Equal(t, 0.0, sampleAt(t, signal.EnvR(), ta(5, 1)))
}

// TestBipolar_RemapsRange: the bipolar twins live on [-1,1] and FromBipolar
// undoes ToBipolar.
func TestBipolar_RemapsRange(t *testing.T) {
	assert.InDelta(t, -0.5, sampleAt(t, signal.Saw2(), ta(1, 4)), 1e-12)
	assert.InDelta(t, 1.0, sampleAt(t, signal.Tri2(), ta(1, 2)), 1e-12)
	assert.InDelta(t, -1.0, sampleAt(t, signal.Square2(), ta(1, 4)), 1e-12)

	roundTrip := signal.FromBipolar(signal.ToBipolar(signal.Saw()))
	assert.InDelta(t, 0.25, sampleAt(t, roundTrip, ta(1, 4)), 1e-12)
}

// TestRange_AffineRemap maps the unipolar saw onto [10,20].
func TestRange_AffineRemap(t *testing.T) {
	scaled := signal.Range(10, 20, signal.Saw())

	assert.InDelta(t, 10.0, sampleAt(t, scaled, ta(0, 1)), 1e-12)
	assert.InDelta(t, 12.5, sampleAt(t, scaled, ta(1, 4)), 1e-12)
	assert.InDelta(t, 17.5, sampleAt(t, scaled, ta(3, 4)), 1e-12)
}

// TestWaveforms_SampleWindowMidpoint: over a window the value is taken at
// the window's midpoint, not its start.
func TestWaveforms_SampleWindowMidpoint(t *testing.T) {
	evs := signal.Saw().QueryArc(span(1, 4, 1, 2))

	require.Len(t, evs, 1)
	assert.InDelta(t, 0.375, evs[0].Value, 1e-12)
	assert.Equal(t, "[1/4,1/2)", evs[0].Active.String())
}
