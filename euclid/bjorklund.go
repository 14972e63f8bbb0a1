// SPDX-License-Identifier: MIT

package euclid

import "errors"

// Sentinel errors for Euclidean rhythm generation. Callers match them via
// errors.Is; the signal layer converts any of them into silence.
var (
	// ErrNonPositiveSteps indicates steps <= 0.
	ErrNonPositiveSteps = errors.New("euclid: steps must be positive")

	// ErrNegativePulses indicates pulses < 0.
	ErrNegativePulses = errors.New("euclid: pulses must be non-negative")

	// ErrPulsesExceedSteps indicates pulses > steps.
	ErrPulsesExceedSteps = errors.New("euclid: pulses exceed steps")
)

// Bjorklund returns a slice of length steps with exactly pulses true slots,
// distributed as evenly as possible, rotated so the first onset (if any)
// sits at index 0.
//
// Algorithm outline:
//  1. Treat the rhythm as pulses "ones" and steps-pulses "zeros".
//  2. Repeatedly pair the larger group's prefixes with the smaller group
//     (Euclid's gcd recursion on the group counts), recording the count and
//     remainder at each level.
//  3. Rebuild the sequence from the recorded counts, innermost level first.
//  4. Rotate the result so index 0 carries an onset.
//
// This is the timing-system distribution algorithm described by Bjorklund
// and analyzed by Toussaint; step 2 terminates because the remainder chain
// strictly decreases, exactly as in Euclid's algorithm.
//
// Errors:
//   - ErrNonPositiveSteps   — steps <= 0.
//   - ErrNegativePulses     — pulses < 0.
//   - ErrPulsesExceedSteps  — pulses > steps.
func Bjorklund(pulses, steps int) ([]bool, error) {
	if steps <= 0 {
		return nil, ErrNonPositiveSteps
	}
	if pulses < 0 {
		return nil, ErrNegativePulses
	}
	if pulses > steps {
		return nil, ErrPulsesExceedSteps
	}
	if pulses == 0 {
		return make([]bool, steps), nil
	}

	// Phase 1: Euclidean recursion over group counts.
	counts := make([]int, 0, steps)
	remainders := make([]int, 0, steps)
	remainders = append(remainders, pulses)
	divisor := steps - pulses
	level := 0
	for {
		counts = append(counts, divisor/remainders[level])
		remainders = append(remainders, divisor%remainders[level])
		divisor = remainders[level]
		level++
		if remainders[level] <= 1 {
			break
		}
	}
	counts = append(counts, divisor)

	// Phase 2: unfold the count/remainder chain into the bit sequence.
	// Recursion depth equals the chain length, which is logarithmic in
	// steps (it is Euclid's gcd chain), so the stack stays shallow.
	pattern := make([]bool, 0, steps)
	var build func(lvl int)
	build = func(lvl int) {
		switch lvl {
		case -1:
			pattern = append(pattern, false)
		case -2:
			pattern = append(pattern, true)
		default:
			for i := 0; i < counts[lvl]; i++ {
				build(lvl - 1)
			}
			if remainders[lvl] != 0 {
				build(lvl - 2)
			}
		}
	}
	build(level)

	// Phase 3: canonical rotation — first onset to step 0.
	first := 0
	for i, on := range pattern {
		if on {
			first = i

			break
		}
	}

	return append(pattern[first:], pattern[:first]...), nil
}
