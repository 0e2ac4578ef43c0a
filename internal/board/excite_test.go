package board

import "testing"

func TestExciteDefaultBoard(t *testing.T) {
	b := New()
	tests := []struct {
		name string
		from Position
		want Position
	}{
		{name: "start tile", from: Position{0, 1}, want: Position{1, 4}},
		{name: "ring 0 tile 0 falls back", from: Position{0, 0}, want: Position{1, 0}},
		{name: "ring 1 first excite", from: Position{1, 2}, want: Position{2, 6}},
		{name: "ring 1 second excite", from: Position{1, 6}, want: Position{2, 15}},
		{name: "ring 1 tile 4", from: Position{1, 4}, want: Position{2, 10}},
		{name: "ring 2 angle below ring 3 start", from: Position{2, 1}, want: Position{3, 0}},
		{name: "ring 2 tile 4", from: Position{2, 4}, want: Position{3, 1}},
		{name: "ring 2 tile 8", from: Position{2, 8}, want: Position{3, 3}},
		{name: "ring 2 tile 10", from: Position{2, 10}, want: Position{3, 4}},
		{name: "ring 2 tile 12", from: Position{2, 12}, want: Position{3, 5}},
		{name: "ring 2 tile 15", from: Position{2, 15}, want: Position{3, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Excite(b, tt.from)
			if !ok {
				t.Fatalf("Excite(%v) exited", tt.from)
			}
			if got != tt.want {
				t.Fatalf("Excite(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestExciteLandsInsideContainingInterval(t *testing.T) {
	b := New()
	for r := 0; r < b.RingCount()-1; r++ {
		ring, _ := b.Ring(r)
		next, _ := b.Ring(r + 1)
		for i := 0; i < ring.TileCount(); i++ {
			from := Position{Ring: r, Tile: i}
			to, ok := Excite(b, from)
			if !ok || to.Ring != r+1 {
				t.Fatalf("Excite(%v) = %v, %v", from, to, ok)
			}
			if to.Tile == 0 {
				continue
			}
			src := b.Angle(from)
			if !(next.Angle(to.Tile-1) < src && src < next.Angle(to.Tile)) {
				t.Fatalf("Excite(%v) = %v: %v not inside (%v, %v)", from, to, src,
					next.Angle(to.Tile-1), next.Angle(to.Tile))
			}
		}
	}
}

func TestExciteOutermostRingExits(t *testing.T) {
	b := New()
	outer, _ := b.Ring(b.RingCount() - 1)
	for i := 0; i < outer.TileCount(); i++ {
		from := Position{Ring: outer.Index(), Tile: i}
		got, ok := Excite(b, from)
		if ok {
			t.Fatalf("Excite(%v) = %v, want exit", from, got)
		}
		if got != from {
			t.Fatalf("exit moved position to %v", got)
		}
	}
}

func TestExciteFromStartExitsWithinRingCount(t *testing.T) {
	b := New()
	pos := b.Start()
	for step := 1; step <= b.RingCount(); step++ {
		next, ok := Excite(b, pos)
		if !ok {
			if step != b.RingCount() {
				t.Fatalf("exited after %d excites, want %d", step, b.RingCount())
			}
			return
		}
		if next.Ring != pos.Ring+1 {
			t.Fatalf("excite %d moved from ring %d to %d", step, pos.Ring, next.Ring)
		}
		pos = next
	}
	t.Fatalf("still on board after %d excites at %v", b.RingCount(), pos)
}

func TestExciteTieFallsBackToTileZero(t *testing.T) {
	b, err := NewFromLayout(Layout{Rings: []RingLayout{
		{StartAngle: 0, Excite: []bool{false, true}},
		{StartAngle: 0, Excite: []bool{false, false, false, false}},
	}})
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	// 180 degrees is exactly tile 2's angle on the outer ring.
	got, ok := Excite(b, Position{Ring: 0, Tile: 1})
	if !ok {
		t.Fatal("unexpected exit")
	}
	if got != (Position{Ring: 1, Tile: 0}) {
		t.Fatalf("tie landed on %v, want R1N0", got)
	}
}

func TestExciteWrapIntervalNeverMatchesBelowStart(t *testing.T) {
	b, err := NewFromLayout(Layout{Rings: []RingLayout{
		{StartAngle: 0, Excite: []bool{true, false, false, false}},
		{StartAngle: 10, Excite: []bool{false, false, false, false}},
	}})
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	// Ring 1 angles are 10, 100, 190, 280; the last interval (280, 10) is
	// empty without normalisation, so angle 0 falls through to tile 0.
	got, _ := Excite(b, Position{Ring: 0, Tile: 0})
	if got != (Position{Ring: 1, Tile: 0}) {
		t.Fatalf("got %v, want R1N0", got)
	}
	// Angle 270 sits in (190, 280) and lands on tile 3.
	got, _ = Excite(b, Position{Ring: 0, Tile: 3})
	if got != (Position{Ring: 1, Tile: 3}) {
		t.Fatalf("got %v, want R1N3", got)
	}
}
