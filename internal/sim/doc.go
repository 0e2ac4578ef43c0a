// Package sim drives games on the ring board.
//
// A game places fresh pawns on the start tile and gives them turns in
// round-robin order: roll the die, move, answer the landed tile's question.
// The game ends right after the turn in which any pawn exits the board; the
// pawn with the most points wins, earlier pawns winning ties.
//
// A Runner plays many independent games on one shared board and one seeded
// source, so a run is reproducible from its seed.
package sim
