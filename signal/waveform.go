// Package signal: the waveform library — continuous unipolar signals in
// [0,1] built on the Waveform primitive, their bipolar twins, and the
// affine remaps between ranges. Floating point appears here only in event
// values; positions stay rational right up to the sample.

package signal

import (
	"math"

	"github.com/ejconlon/Tidal/cycle"
)

// Saw ramps 0 → 1 over every cycle.
func Saw() Signal[float64] {
	return Waveform(func(t cycle.Time) float64 { return t.CyclePos().Float() })
}

// ISaw ramps 1 → 0 over every cycle.
func ISaw() Signal[float64] {
	return Waveform(func(t cycle.Time) float64 { return 1 - t.CyclePos().Float() })
}

// Tri rises 0 → 1 over the first half of each cycle and falls back over
// the second.
func Tri() Signal[float64] {
	return Waveform(func(t cycle.Time) float64 {
		pos := t.CyclePos().Float()
		if pos < 0.5 {
			return 2 * pos
		}

		return 2 - 2*pos
	})
}

// Square is 0 for the first half of each cycle and 1 for the second.
func Square() Signal[float64] {
	return Waveform(func(t cycle.Time) float64 {
		if t.CyclePos().Float() < 0.5 {
			return 0
		}

		return 1
	})
}

// Sine is a unipolar sinusoid with one period per cycle, starting at 1/2.
func Sine() Signal[float64] {
	return Waveform(func(t cycle.Time) float64 {
		return (math.Sin(2*math.Pi*t.Float()) + 1) / 2
	})
}

// Cosine is Sine a quarter cycle ahead.
func Cosine() Signal[float64] {
	return Waveform(func(t cycle.Time) float64 {
		return (math.Cos(2*math.Pi*t.Float()) + 1) / 2
	})
}

// EnvL rises linearly 0 → 1 over cycle zero and holds at 1 afterwards.
func EnvL() Signal[float64] {
	return Waveform(func(t cycle.Time) float64 {
		return clamp01(t.Float())
	})
}

// EnvR falls linearly 1 → 0 over cycle zero and holds at 0 afterwards.
func EnvR() Signal[float64] {
	return Waveform(func(t cycle.Time) float64 {
		return clamp01(1 - t.Float())
	})
}

// ToBipolar remaps a unipolar [0,1] pattern onto [-1,1].
func ToBipolar(p Pattern[float64]) Signal[float64] {
	return FMap(p, func(v float64) float64 { return v*2 - 1 })
}

// FromBipolar remaps a bipolar [-1,1] pattern onto [0,1].
func FromBipolar(p Pattern[float64]) Signal[float64] {
	return FMap(p, func(v float64) float64 { return (v + 1) / 2 })
}

// Range remaps a unipolar pattern onto [lo,hi].
func Range(lo, hi float64, p Pattern[float64]) Signal[float64] {
	return FMap(p, func(v float64) float64 { return lo + v*(hi-lo) })
}

// Bipolar spellings of the stock waveforms.

// Saw2 ramps -1 → 1 over every cycle.
func Saw2() Signal[float64] { return ToBipolar(Saw()) }

// ISaw2 ramps 1 → -1 over every cycle.
func ISaw2() Signal[float64] { return ToBipolar(ISaw()) }

// Tri2 is the bipolar triangle.
func Tri2() Signal[float64] { return ToBipolar(Tri()) }

// Square2 is the bipolar square.
func Square2() Signal[float64] { return ToBipolar(Square()) }

// Sine2 is the bipolar sinusoid.
func Sine2() Signal[float64] { return ToBipolar(Sine()) }

// Cosine2 is the bipolar cosinusoid.
func Cosine2() Signal[float64] { return ToBipolar(Cosine()) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
