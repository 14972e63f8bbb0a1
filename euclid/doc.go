// SPDX-License-Identifier: MIT

// Package euclid generates Euclidean rhythms: maximally even distributions
// of k pulses over n steps, via Bjorklund's pairing algorithm.
//
// 🚀 What is a Euclidean rhythm?
//
//	Distributing pulses as evenly as possible across a fixed number of
//	steps reproduces a striking number of traditional rhythms:
//	  • E(3,8)  = x..x..x.   (Cuban tresillo)
//	  • E(5,8)  = x.xx.xx.   (Cuban cinquillo)
//	  • E(2,5)  = x.x..      (Korean/Persian pattern)
//	  • E(5,16) = x..x..x..x..x... (Brazilian bossa-nova necklace)
//
// ✨ Key properties:
//   - Deterministic: the same (pulses, steps) always yields the same slice.
//   - Canonical rotation: the result is rotated so step 0 carries an onset
//     whenever pulses > 0.
//   - Pure: no allocation is retained, no state is shared.
//
// ⚙️ Usage:
//
//	import "github.com/ejconlon/Tidal/euclid"
//
//	bits, err := euclid.Bjorklund(3, 8)
//	if err != nil {
//	  // handle ErrNonPositiveSteps, ErrNegativePulses, or ErrPulsesExceedSteps
//	}
//	// bits == []bool{true,false,false,true,false,false,true,false}
//
// The signal package wraps this producer into a discrete boolean pattern
// (signal.Euclid) and, per the engine's fail-quiet policy, maps any error
// here to silence.
//
// Complexity: O(steps) time and memory.
package euclid
