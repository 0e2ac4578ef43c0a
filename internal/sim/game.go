package sim

import (
	"context"
	"fmt"
	"strconv"

	"github.com/louisbranch/randomness/internal/board"
	"github.com/louisbranch/randomness/internal/core/dice"
	"github.com/louisbranch/randomness/internal/pawn"
	"github.com/louisbranch/randomness/internal/random"
)

// Turn is one pawn's roll, landed tile kind and answer.
type Turn struct {
	Pawn    string
	Roll    int
	Excite  bool
	Correct bool
}

// GameResult describes a finished game.
type GameResult struct {
	Winner      pawn.Snapshot
	WinnerIndex int
	Pawns       []pawn.Snapshot
	// Questions counts every turn played, one question per turn.
	Questions int
	// Rounds counts completed rounds.
	Rounds int
}

// ExitedPawn returns the pawn that left the board.
func (g GameResult) ExitedPawn() (pawn.Snapshot, bool) {
	for _, p := range g.Pawns {
		if p.Exited {
			return p, true
		}
	}
	return pawn.Snapshot{}, false
}

// PawnName returns the display name of the i-th pawn.
func PawnName(i int) string {
	return "P" + strconv.Itoa(i)
}

// PlayGame plays one game with players pawns to completion. tracer may be nil.
func PlayGame(ctx context.Context, b *board.Board, players int, die dice.Die, src random.Source, tracer Tracer) (GameResult, error) {
	if players <= 0 {
		return GameResult{}, fmt.Errorf("players must be greater than zero, got %d", players)
	}
	if tracer == nil {
		tracer = NopTracer{}
	}

	pawns := make([]*pawn.Pawn, players)
	for i := range pawns {
		pawns[i] = pawn.New(b, PawnName(i), src)
	}

	result := GameResult{}
	current := 0
	tracer.TurnStarted(0)
	for !anyExited(pawns) {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		result.Questions++
		p := pawns[current]
		roll := die.Roll(src)
		p.Move(roll)
		excite := p.Tile().Excite()
		correct := p.Answer()
		tracer.TurnPlayed(Turn{Pawn: p.Name(), Roll: roll, Excite: excite, Correct: correct})

		current = (current + 1) % players
		if current == 0 {
			result.Rounds++
			tracer.RoundEnded(snapshots(pawns))
			tracer.TurnStarted(result.Rounds)
		}
	}

	result.Pawns = snapshots(pawns)
	result.WinnerIndex = leader(pawns)
	result.Winner = result.Pawns[result.WinnerIndex]
	tracer.GameEnded(result)
	return result, nil
}

func anyExited(pawns []*pawn.Pawn) bool {
	for _, p := range pawns {
		if p.Exited() {
			return true
		}
	}
	return false
}

// leader returns the index of the first pawn holding the most points.
func leader(pawns []*pawn.Pawn) int {
	best := 0
	for i, p := range pawns {
		if p.Points() > pawns[best].Points() {
			best = i
		}
	}
	return best
}

func snapshots(pawns []*pawn.Pawn) []pawn.Snapshot {
	out := make([]pawn.Snapshot, len(pawns))
	for i, p := range pawns {
		out[i] = p.Snapshot()
	}
	return out
}
