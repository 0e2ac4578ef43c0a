// Package dice rolls dice with a fixed set of faces.
package dice

import (
	"errors"

	"github.com/louisbranch/randomness/internal/random"
)

// ErrMissingDice is returned when a die is built without any faces.
var ErrMissingDice = errors.New("at least one face is required")

// StandardFaces are the faces of a six-sided die.
var StandardFaces = []int{1, 2, 3, 4, 5, 6}

// Die yields one of its faces with uniform probability.
//
// # Determinism
//
// Roll consumes exactly one Intn draw from the source, so a seeded source
// replays the same sequence of rolls.
type Die struct {
	faces []int
}

// New creates a die with the given faces, in order. Faces may repeat.
func New(faces ...int) (Die, error) {
	if len(faces) == 0 {
		return Die{}, ErrMissingDice
	}
	cloned := make([]int, len(faces))
	copy(cloned, faces)
	return Die{faces: cloned}, nil
}

// Standard returns a six-sided die.
func Standard() Die {
	die, _ := New(StandardFaces...)
	return die
}

// Roll draws one face from src.
func (d Die) Roll(src random.Source) int {
	return d.faces[src.Intn(len(d.faces))]
}

// Faces returns a copy of the die faces.
func (d Die) Faces() []int {
	out := make([]int, len(d.faces))
	copy(out, d.faces)
	return out
}
