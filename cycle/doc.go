// SPDX-License-Identifier: MIT

// Package cycle provides the exact-rational time line of the pattern engine:
// Time points, half-open Arc intervals, and the per-cycle decomposition
// primitives every higher layer is built on.
//
// 🚀 What is cycle?
//
//	Pattern time is counted in abstract cycles, not seconds. A cycle is the
//	unit interval [n, n+1) and every position is an exact rational number:
//	  • Time — arbitrary-precision rational position (math/big backed)
//	  • Arc  — half-open interval [begin, end); begin == end is a legal
//	    zero-width "point" arc used for continuous-signal samples
//	  • Sam / NextSam / CyclePos — cycle-boundary arithmetic
//	  • SplitCycles — decompose a multi-cycle arc into per-cycle sub-arcs
//
// ✨ Why exact rationals?
//
//   - Pattern composition nests without bound; floating-point time would
//     accumulate drift that becomes audible downstream.
//   - All comparisons and arithmetic are exact, so deeply composed
//     queries land on precisely the same boundaries every evaluation.
//
// ⚙️ Intersection tie-break
//
//	Arc.SectMaybe intersects two arcs as (max begin, min end) and reports
//	failure for inverted results. A zero-width result survives only when it
//	does not sit on the exclusive end boundary of a non-zero-width operand:
//	a point arc touching another arc's begin intersects it, a point arc
//	touching its end does not. This keeps continuous samples alive at shared
//	boundaries without resurrecting events that have already ended.
//
// Degenerate input is neutralized, never raised: division by a zero Time
// yields zero, so every operation in this package is total.
package cycle
