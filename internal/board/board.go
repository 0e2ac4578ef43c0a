package board

import (
	"fmt"
	"io"
	"strconv"

	apperrors "github.com/louisbranch/randomness/internal/platform/errors"
)

// Position addresses a tile by ring index and tile index.
type Position struct {
	Ring int
	Tile int
}

// String renders the position as R<ring>N<tile>.
func (p Position) String() string {
	return "R" + strconv.Itoa(p.Ring) + "N" + strconv.Itoa(p.Tile)
}

// Tile is a single square on a ring.
type Tile struct {
	id     int
	ring   int
	index  int
	excite bool
}

// ID returns the tile identity.
func (t Tile) ID() int { return t.id }

// Excite reports whether a correct answer on this tile promotes the pawn.
func (t Tile) Excite() bool { return t.excite }

// Position returns where the tile sits on its board.
func (t Tile) Position() Position { return Position{Ring: t.ring, Tile: t.index} }

// Ring is one concentric layer of tiles.
type Ring struct {
	id         int
	index      int
	startAngle float64
	tiles      []Tile
}

// ID returns the ring identity.
func (r *Ring) ID() int { return r.id }

// Index returns the ring's position on the board, 0 being innermost.
func (r *Ring) Index() int { return r.index }

// StartAngle returns the angle of tile 0, in degrees.
func (r *Ring) StartAngle() float64 { return r.startAngle }

// TileCount returns the number of tiles on the ring.
func (r *Ring) TileCount() int { return len(r.tiles) }

// Tile returns the tile at i modulo the tile count. Negative indices wrap
// backwards.
func (r *Ring) Tile(i int) Tile {
	return r.tiles[r.wrap(i)]
}

// Angle returns the angle of the tile at i (wrapped), in degrees.
func (r *Ring) Angle(i int) float64 {
	return r.startAngle + float64(r.wrap(i))*(360/float64(len(r.tiles)))
}

// Tiles returns a copy of the ring's tiles in order.
func (r *Ring) Tiles() []Tile {
	out := make([]Tile, len(r.tiles))
	copy(out, r.tiles)
	return out
}

func (r *Ring) wrap(i int) int {
	n := len(r.tiles)
	return ((i % n) + n) % n
}

// Board owns its rings in construction order.
type Board struct {
	rings []*Ring
}

// idArena hands out identities in construction order.
type idArena struct {
	nextRing int
	nextTile int
}

func (a *idArena) ringID() int {
	id := a.nextRing
	a.nextRing++
	return id
}

func (a *idArena) tileID() int {
	id := a.nextTile
	a.nextTile++
	return id
}

// New builds the standard board.
func New() *Board {
	b, err := NewFromLayout(DefaultLayout())
	if err != nil {
		panic(fmt.Sprintf("default board layout: %v", err))
	}
	return b
}

// NewFromLayout builds a board from explicit tables. Every ring needs at
// least one tile.
func NewFromLayout(layout Layout) (*Board, error) {
	if len(layout.Rings) == 0 {
		return nil, apperrors.WithMetadata(apperrors.CodeLayoutInvalid, "layout has no rings",
			map[string]string{"Reason": "no rings"})
	}
	arena := &idArena{}
	b := &Board{rings: make([]*Ring, len(layout.Rings))}
	for ri, rl := range layout.Rings {
		if len(rl.Excite) == 0 {
			reason := fmt.Sprintf("ring %d has no tiles", ri)
			return nil, apperrors.WithMetadata(apperrors.CodeLayoutInvalid, "layout "+reason,
				map[string]string{"Reason": reason})
		}
		ring := &Ring{
			id:         arena.ringID(),
			index:      ri,
			startAngle: rl.StartAngle,
			tiles:      make([]Tile, len(rl.Excite)),
		}
		for ti, excite := range rl.Excite {
			ring.tiles[ti] = Tile{id: arena.tileID(), ring: ri, index: ti, excite: excite}
		}
		b.rings[ri] = ring
	}
	return b, nil
}

// RingCount returns the number of rings.
func (b *Board) RingCount() int {
	return len(b.rings)
}

// Ring returns the ring at index i. ok is false when there is no such ring,
// which is how callers learn they are already on the outermost ring.
func (b *Board) Ring(i int) (ring *Ring, ok bool) {
	if i < 0 || i >= len(b.rings) {
		return nil, false
	}
	return b.rings[i], true
}

// RingAt returns the ring at index i or a RING_OUT_OF_RANGE error.
func (b *Board) RingAt(i int) (*Ring, error) {
	ring, ok := b.Ring(i)
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeRingOutOfRange,
			fmt.Sprintf("ring index %d out of range [0, %d)", i, len(b.rings)),
			map[string]string{"Index": strconv.Itoa(i)})
	}
	return ring, nil
}

// Start returns the spawn position for new pawns: ring 0, tile 1.
func (b *Board) Start() Position {
	return Position{Ring: 0, Tile: b.rings[0].wrap(1)}
}

// Tile resolves a position. The tile index wraps; the ring index must be on
// the board.
func (b *Board) Tile(pos Position) Tile {
	return b.mustRing(pos.Ring).Tile(pos.Tile)
}

// Angle returns the angle of the tile at pos.
func (b *Board) Angle(pos Position) float64 {
	return b.mustRing(pos.Ring).Angle(pos.Tile)
}

// Step moves steps tiles along pos's ring, wrapping around.
func (b *Board) Step(pos Position, steps int) Position {
	ring := b.mustRing(pos.Ring)
	return Position{Ring: pos.Ring, Tile: ring.wrap(pos.Tile + steps)}
}

// LocateRing returns the index of the ring with the given identity.
func (b *Board) LocateRing(id int) (int, error) {
	for i, ring := range b.rings {
		if ring.id == id {
			return i, nil
		}
	}
	return 0, apperrors.WithMetadata(apperrors.CodeRingNotFound,
		fmt.Sprintf("ring %d not on board", id),
		map[string]string{"ID": strconv.Itoa(id)})
}

// LocateTile returns the position of the tile with the given identity.
func (b *Board) LocateTile(id int) (Position, error) {
	for _, ring := range b.rings {
		for _, tile := range ring.tiles {
			if tile.id == id {
				return tile.Position(), nil
			}
		}
	}
	return Position{}, apperrors.WithMetadata(apperrors.CodeTileNotFound,
		fmt.Sprintf("tile %d not on board", id),
		map[string]string{"ID": strconv.Itoa(id)})
}

// Describe writes the ring sizes and tile kinds, one ring per block.
func (b *Board) Describe(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Rings: %d\n", len(b.rings)); err != nil {
		return err
	}
	for i, ring := range b.rings {
		tiles := ring.Tiles()
		kinds := make([]byte, len(tiles))
		for j, tile := range tiles {
			kinds[j] = 'n'
			if tile.excite {
				kinds[j] = 'E'
			}
		}
		if _, err := fmt.Fprintf(w, "Ring %d nodes: %d\n  %s\n", i, len(tiles), kinds); err != nil {
			return err
		}
	}
	return nil
}

// mustRing panics on an index outside the board: positions only come from
// this board, so a bad one is a construction bug.
func (b *Board) mustRing(i int) *Ring {
	ring, ok := b.Ring(i)
	if !ok {
		panic(fmt.Sprintf("board: position on ring %d, board has %d rings", i, len(b.rings)))
	}
	return ring
}
