// Package storage defines persistence for simulation run reports.
//
// A run report is the aggregate of one ringsim invocation: seed, player and
// game counts, question totals and the per-pawn win and exit distribution.
// Game state itself is never stored. Implementations live in subpackages.
package storage
