package revmg

// Flip returns the discs turned over by the side holding p playing at sq
// against o. A square with no bracketed opponent run flips nothing, so a
// zero result on an empty square means the move is illegal. Occupied squares
// and the pseudo-squares 64 (pass) and 65 flip nothing.
func Flip(sq Square, p, o uint64) uint64 {
	return flipFn(sq, p, o)
}

// emptiesGuard is all-ones when sq is an empty board square and zero
// otherwise. Shifts of 64 or more are defined as zero in Go, so the pass and
// no-move pseudo-squares fall through without a branch.
func emptiesGuard(sq Square, p, o uint64) uint64 {
	return -(^(p | o) >> uint(sq) & 1)
}

// flipGather computes flips with one table pass per axis: extract the line
// patterns through sq, look up the bracketing discs, look up the flipped
// discs, scatter them back. Line positions are indexed by file for the row
// and by rank for the other axes, matching the gather masks.
func flipGather(sq Square, p, o uint64) uint64 {
	x := int(sq) & 7
	r := int(sq) >> 3 & 7

	m := lineMask[AxisRow][sq]
	g := gatherMask[AxisRow][sq]
	of := outflankTable[x][pext(o&m, g)>>1&0x3F] & uint8(pext(p&m, g))
	flipped := pdep(uint64(flippedTable[x][of]), g) & m

	m = lineMask[AxisCol][sq]
	g = gatherMask[AxisCol][sq]
	of = outflankTable[r][pext(o&m, g)>>1&0x3F] & uint8(pext(p&m, g))
	flipped |= pdep(uint64(flippedTable[r][of]), g) & m

	m = lineMask[AxisDiagNE][sq]
	g = gatherMask[AxisDiagNE][sq]
	of = outflankTable[r][pext(o&m, g)>>1&0x3F] & uint8(pext(p&m, g))
	flipped |= pdep(uint64(flippedTable[r][of]), g) & m

	m = lineMask[AxisDiagNW][sq]
	g = gatherMask[AxisDiagNW][sq]
	of = outflankTable[r][pext(o&m, g)>>1&0x3F] & uint8(pext(p&m, g))
	flipped |= pdep(uint64(flippedTable[r][of]), g) & m

	return flipped & emptiesGuard(sq, p, o)
}

// flipPortable computes the same flips without bit gathering: the row by a
// plain shift, the column by the multiply that stacks a file into the top
// byte, the diagonals by the multiply that stacks their distinct files.
// Diagonal patterns are indexed by file here, so the same tables apply.
func flipPortable(sq Square, p, o uint64) uint64 {
	x := int(sq) & 7
	y := uint(sq) & 0x38
	r := int(sq) >> 3 & 7

	of := outflankTable[x][uint8(o>>y)>>1&0x3F] & uint8(p>>y)
	flipped := uint64(flippedTable[x][of]) << y

	of = outflankTable[r][packCol(o, x)>>1&0x3F] & packCol(p, x)
	flipped |= unpackCol(flippedTable[r][of], x)

	m := lineMask[AxisDiagNE][sq]
	of = outflankTable[x][packDiag(o&m)>>1&0x3F] & packDiag(p&m)
	flipped |= unpackDiag(flippedTable[x][of], m)

	m = lineMask[AxisDiagNW][sq]
	of = outflankTable[x][packDiag(o&m)>>1&0x3F] & packDiag(p&m)
	flipped |= unpackDiag(flippedTable[x][of], m)

	return flipped & emptiesGuard(sq, p, o)
}
