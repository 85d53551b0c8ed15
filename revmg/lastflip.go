package revmg

import "math/bits"

// CountLastFlip returns twice the number of discs flipped by the side
// holding p playing at sq, with every other square implicitly held by the
// opponent. Valid when sq is the last empty square of the position, which
// is where the doubled count feeds a final score directly.
func CountLastFlip(sq Square, p uint64) int {
	return lastFlipFn(sq, p)
}

// lastFlipTable counts flips with one count-flip lookup per axis, packing
// each line the same way the portable flip does.
func lastFlipTable(sq Square, p uint64) int {
	x := int(sq) & 7
	y := uint(sq) & 0x38
	r := int(sq) >> 3 & 7

	n := int(countFlip[x][uint8(p>>y)])
	n += int(countFlip[r][packCol(p, x)])
	n += int(countFlip[x][packDiag(p&lineMask[AxisDiagNE][sq])])
	n += int(countFlip[x][packDiag(p&lineMask[AxisDiagNW][sq])])
	return n
}

// lastFlipScan keeps the table for the row but finds the bracketing disc on
// the other three axes by bit scans: the nearest friendly disc above sq is
// the lowest set bit of the line part above it, the nearest below is the
// highest set bit of the part below. Everything strictly between is flipped.
func lastFlipScan(sq Square, p uint64) int {
	x := int(sq) & 7
	y := uint(sq) & 0x38

	n := int(countFlip[x][uint8(p>>y)])
	for axis := AxisCol; axis <= AxisDiagNW; axis++ {
		above := aboveMask[axis][sq]
		below := belowMask[axis][sq]
		if up := p & above; up != 0 {
			n += 2 * bits.OnesCount64(above&(up&-up-1))
		}
		if down := p & below; down != 0 {
			top := uint(63 - bits.LeadingZeros64(down))
			n += 2 * bits.OnesCount64(below&^(uint64(2)<<top-1))
		}
	}
	return n
}
