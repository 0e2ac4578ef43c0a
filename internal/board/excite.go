package board

// Excite finds where a pawn on from lands when it climbs one ring outward.
//
// It returns ok=false when from is already on the outermost ring; the pawn
// then leaves the board. Otherwise the destination is the tile i+1 on the
// next ring whose interval (angle(i), angle(i+1)) strictly contains the
// source angle, scanning i in index order with i+1 wrapping to tile 0. When no
// interval contains the angle, including exact ties with a tile angle, the
// destination is tile 0.
func Excite(b *Board, from Position) (to Position, ok bool) {
	next, ok := b.Ring(from.Ring + 1)
	if !ok {
		return from, false
	}
	src := b.Angle(from)
	n := next.TileCount()
	for i := 0; i < n; i++ {
		lo, hi := next.Angle(i), next.Angle(i+1)
		if lo < src && src < hi {
			return Position{Ring: next.Index(), Tile: next.wrap(i + 1)}, true
		}
	}
	return Position{Ring: next.Index(), Tile: 0}, true
}
