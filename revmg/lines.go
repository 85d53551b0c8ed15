package revmg

import "math/bits"

// Axis identifies one of the four line families through a square.
type Axis int

const (
	AxisRow    Axis = 0 // west-east
	AxisCol    Axis = 1 // south-north
	AxisDiagNE Axis = 2 // a1-h8 direction, step +9
	AxisDiagNW Axis = 3 // h1-a8 direction, step +7
)

// lineMask[axis][sq] holds the squares of the line through sq along axis,
// including sq itself. Entries 64 and 65 are zero so that the pass and
// no-move pseudo-squares flow through the flip tables without a branch.
var lineMask [4][66]uint64

// gatherMask[axis][sq] is lineMask padded so that every rank byte carries
// exactly one bit (for the column and diagonal axes). Extracting through it
// packs a line so that bit r of the pattern is the line square on rank r;
// ranks the line never visits read as zero because boards are masked with
// lineMask first. The row axis needs no padding and packs by file.
var gatherMask [4][66]uint64

func init() {
	initLineMasks()
	initFlipTables()
	initCountFlipTable()
	initEdgeStability()
	bindKernels()
}

// initLineMasks builds the per-square line and gather masks for all four axes.
func initLineMasks() {
	for sq := 0; sq < 64; sq++ {
		file := sq & 7
		rank := sq >> 3

		lineMask[AxisRow][sq] = uint64(0xFF) << uint(rank*8)
		lineMask[AxisCol][sq] = uint64(0x0101010101010101) << uint(file)

		dirs := [2][2]int{{1, 1}, {1, -1}} // {dRank, dFile} for NE, NW
		for i, d := range dirs {
			axis := AxisDiagNE + Axis(i)
			mask := uint64(1) << uint(sq)
			for r, f := rank+d[0], file+d[1]; r < 8 && f >= 0 && f < 8; r, f = r+d[0], f+d[1] {
				mask |= uint64(1) << uint(r*8+f)
			}
			for r, f := rank-d[0], file-d[1]; r >= 0 && f >= 0 && f < 8; r, f = r-d[0], f-d[1] {
				mask |= uint64(1) << uint(r*8+f)
			}
			lineMask[axis][sq] = mask
		}

		gatherMask[AxisRow][sq] = lineMask[AxisRow][sq]
		for axis := AxisCol; axis <= AxisDiagNW; axis++ {
			mask := lineMask[axis][sq]
			for r := 0; r < 8; r++ {
				if mask>>uint(r*8)&0xFF == 0 {
					mask |= uint64(1) << uint(r*8)
				}
			}
			gatherMask[axis][sq] = mask
		}
	}
}

// ExtractLine packs the discs of board lying on the line through sq along
// axis into the low 8 bits: by file for the row axis, by rank otherwise.
// Pattern positions the line does not visit read as zero.
func ExtractLine(sq Square, axis Axis, board uint64) uint8 {
	return uint8(pext(board&lineMask[axis][sq], gatherMask[axis][sq]))
}

// ScatterLine is the inverse of ExtractLine: it spreads an 8-bit line
// pattern back onto the board squares of the line through sq.
func ScatterLine(sq Square, axis Axis, pattern uint8) uint64 {
	return pdep(uint64(pattern), gatherMask[axis][sq]) & lineMask[axis][sq]
}

// software pext: gather bits of x at positions of mask into the low bits
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(lsb))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
		m &= m - 1
	}
	return res
}

// software pdep: deposit low bits of x into positions of mask
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(lsb))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
		m &= m - 1
	}
	return res
}

// packCol reduces the given file of b to an 8-bit pattern indexed by rank.
func packCol(b uint64, file int) uint8 {
	return uint8((b >> uint(file) & 0x0101010101010101) * 0x0102040810204080 >> 56)
}

// unpackCol spreads an 8-bit rank-indexed pattern back onto the given file.
// No single multiply inverts packCol without carry collisions between ranks,
// so the software scatter does it.
func unpackCol(p uint8, file int) uint64 {
	return pdep(uint64(p), uint64(0x0101010101010101)<<uint(file))
}

// packDiag reduces a diagonal (pre-masked with its line mask) to an 8-bit
// pattern indexed by file. Diagonal squares sit on distinct files, so the
// multiply accumulates each one into its file column of the top byte.
func packDiag(masked uint64) uint8 {
	return uint8(masked * 0x0101010101010101 >> 56)
}

// unpackDiag spreads a file-indexed pattern back onto the diagonal squares
// selected by mask.
func unpackDiag(p uint8, mask uint64) uint64 {
	return uint64(p) * 0x0101010101010101 & mask
}
