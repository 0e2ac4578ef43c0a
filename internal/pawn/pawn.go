// Package pawn implements a player's token: where it stands, how many points
// it holds, and whether it has left the board.
package pawn

import (
	"strconv"

	"github.com/louisbranch/randomness/internal/board"
	"github.com/louisbranch/randomness/internal/core/check"
	"github.com/louisbranch/randomness/internal/random"
)

const (
	// ExciteChance is the chance of answering an excite tile's question.
	ExciteChance = 0.8
	// NormalChance is the chance of answering a normal tile's question.
	NormalChance = 0.7

	// NormalPoints are awarded for a correct answer on a normal tile.
	NormalPoints = 1
	// ExcitePoints are awarded for a correct answer on an excite tile.
	ExcitePoints = 2
	// ExitBonus is awarded when the pawn leaves the board.
	ExitBonus = 2
)

// State is the pawn lifecycle state.
type State int

const (
	// Active pawns take turns.
	Active State = iota
	// Exited pawns have left the board; nothing changes them any more.
	Exited
)

// String returns the state name.
func (s State) String() string {
	if s == Exited {
		return "exited"
	}
	return "active"
}

// SuccessChance returns the chance of answering a question on a tile.
func SuccessChance(excite bool) float64 {
	if excite {
		return ExciteChance
	}
	return NormalChance
}

// Pawn is owned by a single game for its whole life.
type Pawn struct {
	name   string
	board  *board.Board
	src    random.Source
	pos    board.Position
	points int
	state  State
}

// New places a pawn on the board's start tile. Answers draw from src.
func New(b *board.Board, name string, src random.Source) *Pawn {
	return &Pawn{
		name:  name,
		board: b,
		src:   src,
		pos:   b.Start(),
	}
}

// Name returns the display name.
func (p *Pawn) Name() string { return p.name }

// Position returns the current tile. After exiting it keeps the last tile
// the pawn stood on.
func (p *Pawn) Position() board.Position { return p.pos }

// Tile returns the tile under the pawn.
func (p *Pawn) Tile() board.Tile { return p.board.Tile(p.pos) }

// Points returns the points collected so far.
func (p *Pawn) Points() int { return p.points }

// State returns the lifecycle state.
func (p *Pawn) State() State { return p.state }

// Exited reports whether the pawn has left the board.
func (p *Pawn) Exited() bool { return p.state == Exited }

// Move walks steps tiles around the current ring.
func (p *Pawn) Move(steps int) {
	if p.Exited() {
		return
	}
	p.pos = p.board.Step(p.pos, steps)
}

// Answer asks the question of the current tile and reports whether it was
// answered correctly. A correct answer on an excite tile also excites the
// pawn. Exited pawns answer nothing and draw nothing.
func (p *Pawn) Answer() bool {
	if p.Exited() {
		return false
	}
	excite := p.Tile().Excite()
	if !check.Succeeds(p.src.Float64(), SuccessChance(excite)) {
		return false
	}
	if excite {
		p.points += ExcitePoints
		p.Excite()
	} else {
		p.points += NormalPoints
	}
	return true
}

// Excite climbs one ring outward, or leaves the board with the exit bonus
// when already on the outermost ring.
func (p *Pawn) Excite() {
	if p.Exited() {
		return
	}
	next, ok := board.Excite(p.board, p.pos)
	if !ok {
		p.state = Exited
		p.points += ExitBonus
		return
	}
	p.pos = next
}

// String renders the pawn as <points>R<ring>N<tile>.
func (p *Pawn) String() string {
	return strconv.Itoa(p.points) + p.pos.String()
}

// Snapshot is an immutable copy of a pawn's public state.
type Snapshot struct {
	Name     string
	Position board.Position
	Points   int
	Exited   bool
}

// Snapshot captures the pawn's current state.
func (p *Pawn) Snapshot() Snapshot {
	return Snapshot{
		Name:     p.name,
		Position: p.pos,
		Points:   p.points,
		Exited:   p.Exited(),
	}
}

// String renders the snapshot like Pawn.String.
func (s Snapshot) String() string {
	return strconv.Itoa(s.Points) + s.Position.String()
}
