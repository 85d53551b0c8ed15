package revmg

import "lukechampine.com/frand"

const bignum = 1<<63 - 2

// Zobrist keys: one per (color, square) disc plus one for the side to move.
// Keys are color-stable, so the hash of a position does not depend on which
// perspective the bitboards are held in.
var zobristDisc [2][64]uint64
var zobristSide uint64

func init() {
	for c := 0; c < 2; c++ {
		for sq := 0; sq < 64; sq++ {
			zobristDisc[c][sq] = frand.Uint64n(bignum) + 1
		}
	}
	zobristSide = frand.Uint64n(bignum) + 1
}

// computeHash derives the Zobrist key of the position from scratch. Move
// making maintains the key incrementally; this is the reference for both.
func (b *Board) computeHash() uint64 {
	var key uint64
	us := int(b.sideToMove)
	them := us ^ 1
	for d := b.player; d != 0; {
		key ^= zobristDisc[us][popLSB(&d)]
	}
	for d := b.opponent; d != 0; {
		key ^= zobristDisc[them][popLSB(&d)]
	}
	if b.sideToMove == White {
		key ^= zobristSide
	}
	return key
}
