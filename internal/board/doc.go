// Package board models the ring board: four concentric rings of tiles laid
// out by angle, with wraparound indexing inside each ring.
//
// # Topology
//
// A Board owns its Rings and each Ring owns a fixed-size slice of Tiles.
// Nothing changes after construction, so a single Board is shared by every
// game and pawn of a run without locking.
//
// Tiles and rings receive identities from an arena during construction, in
// construction order. Identity lookups (LocateRing, LocateTile) exist for
// callers holding an ID; the simulation itself moves around by Position.
//
// # Angles
//
// A tile's angle is derived rather than stored:
//
//	angle = ring.StartAngle + index * (360 / ring.TileCount)
//
// Angles are not normalised into [0, 360); the start angle table already
// places every ring where it needs to be.
package board
