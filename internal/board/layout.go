package board

// RingLayout describes one ring: where its first tile sits and which tiles
// are excite tiles.
type RingLayout struct {
	StartAngle float64
	Excite     []bool
}

// Layout lists rings from innermost to outermost.
type Layout struct {
	Rings []RingLayout
}

// DefaultRingCount is the number of rings on the standard board.
const DefaultRingCount = 4

// DefaultLayout returns the standard four ring board.
//
//	ring 0  start 0      nE
//	ring 1  start 16.67  nnEnnnEn
//	ring 2  start 4      nEnnEnnnEnnnEnnEnn
//	ring 3  start 40.4   nnnnnnnE
func DefaultLayout() Layout {
	return Layout{Rings: []RingLayout{
		{StartAngle: 0, Excite: parseTiles("nE")},
		{StartAngle: 16.67, Excite: parseTiles("nnEnnnEn")},
		{StartAngle: 4, Excite: parseTiles("nEnnEnnnEnnnEnnEnn")},
		{StartAngle: 40.4, Excite: parseTiles("nnnnnnnE")},
	}}
}

func parseTiles(pattern string) []bool {
	out := make([]bool, len(pattern))
	for i, ch := range pattern {
		out[i] = ch == 'E'
	}
	return out
}
