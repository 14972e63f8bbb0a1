package euclid_test

import (
	"testing"

	"github.com/ejconlon/Tidal/euclid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// render draws a bit slice in the conventional x/. notation.
func render(bits []bool) string {
	out := make([]byte, len(bits))
	for i, on := range bits {
		if on {
			out[i] = 'x'
		} else {
			out[i] = '.'
		}
	}

	return string(out)
}

// TestBjorklund_KnownRhythms pins the classic Euclidean necklaces.
func TestBjorklund_KnownRhythms(t *testing.T) {
	cases := []struct {
		pulses, steps int
		want          string
	}{
		{3, 8, "x..x..x."},
		{5, 8, "x.xx.xx."},
		{2, 5, "x.x.."},
		{4, 4, "xxxx"},
		{1, 4, "x..."},
		{7, 8, "xxxxxxx."},
	}
	for _, tc := range cases {
		bits, err := euclid.Bjorklund(tc.pulses, tc.steps)
		require.NoError(t, err, "E(%d,%d)", tc.pulses, tc.steps)
		assert.Equal(t, tc.want, render(bits), "E(%d,%d)", tc.pulses, tc.steps)
	}
}

// TestBjorklund_PulseCountAndLength checks the structural contract for a
// sweep of shapes: length == steps, exactly pulses onsets, onset at step 0.
func TestBjorklund_PulseCountAndLength(t *testing.T) {
	for steps := 1; steps <= 16; steps++ {
		for pulses := 0; pulses <= steps; pulses++ {
			bits, err := euclid.Bjorklund(pulses, steps)
			require.NoError(t, err, "E(%d,%d)", pulses, steps)
			require.Len(t, bits, steps, "E(%d,%d)", pulses, steps)

			count := 0
			for _, on := range bits {
				if on {
					count++
				}
			}
			assert.Equal(t, pulses, count, "E(%d,%d) onset count", pulses, steps)
			if pulses > 0 {
				assert.True(t, bits[0], "E(%d,%d) must start on an onset", pulses, steps)
			}
		}
	}
}

// TestBjorklund_ZeroPulses checks the all-rest rhythm.
func TestBjorklund_ZeroPulses(t *testing.T) {
	bits, err := euclid.Bjorklund(0, 4)

	require.NoError(t, err)
	assert.Equal(t, "....", render(bits))
}

// TestBjorklund_InputValidation matches the sentinel errors via errors.Is.
func TestBjorklund_InputValidation(t *testing.T) {
	_, err := euclid.Bjorklund(3, 0)
	assert.ErrorIs(t, err, euclid.ErrNonPositiveSteps)

	_, err = euclid.Bjorklund(3, -8)
	assert.ErrorIs(t, err, euclid.ErrNonPositiveSteps)

	_, err = euclid.Bjorklund(-1, 8)
	assert.ErrorIs(t, err, euclid.ErrNegativePulses)

	_, err = euclid.Bjorklund(9, 8)
	assert.ErrorIs(t, err, euclid.ErrPulsesExceedSteps)
}
