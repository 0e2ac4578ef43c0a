package scenario

import "github.com/louisbranch/randomness/internal/pawn"

// scriptedSource answers the next question as the script dictates. Intn is
// never used by scenario turns since rolls are scripted.
type scriptedSource struct {
	draw float64
}

// answer primes the next Float64 draw so the answer comes out correct or
// wrong for the landed tile's chance.
func (s *scriptedSource) answer(correct, excite bool) {
	if correct {
		s.draw = 0
		return
	}
	s.draw = pawn.SuccessChance(excite)
}

func (s *scriptedSource) Intn(int) int { return 0 }

func (s *scriptedSource) Float64() float64 { return s.draw }
