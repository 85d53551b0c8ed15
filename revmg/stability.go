package revmg

import "math/bits"

const (
	fileA = 0x0101010101010101
	fileH = 0x8080808080808080
	rank1 = 0x00000000000000FF
	rank8 = 0xFF00000000000000

	// edgeRing is the border of the board: both edge ranks and files.
	edgeRing = 0xFF818181818181FF
)

// Stability returns the number of discs of p that cannot be flipped by any
// continuation. Edge discs come from the exhaustive edge table; interior
// discs start from squares whose four lines are completely filled and grow
// by a fixed-point closure over stable or full neighbours on every axis.
// The count is a lower bound on the truly unflippable discs.
func Stability(p, o uint64) int {
	disc := p | o
	central := p &^ edgeRing
	fullH, fullV, fullNW, fullNE := fullLines(disc)

	stable := edgeStableBits(p, o) | central&fullH&fullV&fullNW&fullNE
	if stable == 0 {
		return 0
	}
	for {
		prev := stable
		stH := stable>>1 | stable<<1 | fullH
		stV := stable>>8 | stable<<8 | fullV
		stNW := stable>>7 | stable<<7 | fullNW
		stNE := stable>>9 | stable<<9 | fullNE
		stable |= central & stH & stV & stNW & stNE
		if stable == prev {
			break
		}
	}
	return bits.OnesCount64(stable)
}

// edgeStableBits gathers the four border lines, looks each one up in the
// edge table and scatters the stable discs back onto the board.
func edgeStableBits(p, o uint64) uint64 {
	s := uint64(edgeStable[uint32(uint8(p))<<8|uint32(uint8(o))])
	s |= uint64(edgeStable[p>>56<<8|o>>56]) << 56
	s |= pdep(uint64(edgeStable[pext(p, fileA)<<8|pext(o, fileA)]), fileA)
	s |= pdep(uint64(edgeStable[pext(p, fileH)<<8|pext(o, fileH)]), fileH)
	return s
}

// fullLines computes, for each axis, the squares whose whole line is
// occupied. Horizontal lines narrow pairwise within each rank byte; vertical
// lines narrow by rotations, which cannot leak across files; the diagonals
// narrow a run in each direction, with fills standing in for neighbours
// beyond the board, then meet in the middle. Each directional fill covers
// only the squares whose neighbour in that direction is off the board; a
// wider fill would skip real adjacency checks on the other edges.
func fullLines(disc uint64) (fullH, fullV, fullNW, fullNE uint64) {
	h := disc & (disc>>1 | 0x8080808080808080)
	h &= h>>2 | 0xC0C0C0C0C0C0C0C0
	h &= h>>4 | 0xF0F0F0F0F0F0F0F0
	fullH = (h & 0x0101010101010101) * 0xFF

	v := disc & bits.RotateLeft64(disc, 32)
	v &= bits.RotateLeft64(v, 16)
	fullV = v & bits.RotateLeft64(v, 8)

	l := disc & (0xFF01010101010101 | disc>>7)
	r := disc & (0x80808080808080FF | disc<<7)
	l &= 0xFFFF030303030303 | l>>14
	r &= 0xC0C0C0C0C0C0FFFF | r<<14
	l &= 0xFFFFFFFF0F0F0F0F | l>>28
	r &= 0xF0F0F0F0FFFFFFFF | r<<28
	fullNW = l & r

	l = disc & (0xFF80808080808080 | disc>>9)
	r = disc & (0x01010101010101FF | disc<<9)
	l &= 0xFFFFC0C0C0C0C0C0 | l>>18
	r &= 0x030303030303FFFF | r<<18
	l &= 0xFFFFFFFFF0F0F0F0 | l>>36
	r &= 0x0F0F0F0FFFFFFFFF | r<<36
	fullNE = l & r

	return fullH, fullV, fullNW, fullNE
}
