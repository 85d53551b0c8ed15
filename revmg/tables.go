package revmg

import "math/bits"

// Flip tables, generated at init from the line rules.
//
// outflankTable[x][o6] gives, for a disc played at position x of an 8-square
// line whose inner six squares hold the opponent pattern o6, the candidate
// positions where a bracketing friendly disc would complete a capture in
// either direction. ANDing with the friendly pattern keeps the real brackets.
//
// flippedTable[x][outflank] gives the discs turned over between x and each
// bracketing disc. Indexed by the outflank byte; reachable values stay below
// 144 because brackets sit at least two squares away from x on each side.
var outflankTable [8][64]uint8
var flippedTable [8][144]uint8

// countFlip[x][p8] is twice the number of discs flipped by playing at
// position x of a line whose friendly discs form pattern p8, with every
// other square of the line implicitly held by the opponent. Valid for the
// last empty square of a position.
var countFlip [8][256]uint8

// aboveMask/belowMask split the line through a square into the parts above
// and below it in bit order, for the bit-scan last-flip variant.
var aboveMask [4][66]uint64
var belowMask [4][66]uint64

// edgeStable[p8<<8|o8] holds the discs of p8 that no sequence of plays on
// the edge line (p8, o8) can ever flip. Built by exhaustive play-out.
var edgeStable [256 * 256]uint8

func initFlipTables() {
	for x := 0; x < 8; x++ {
		for o6 := 0; o6 < 64; o6++ {
			full := o6 << 1 // inner six bits, outer two always readable as empty
			out := 0
			y := x + 1
			for y < 8 && full>>uint(y)&1 == 1 {
				y++
			}
			if y < 8 && y > x+1 {
				out |= 1 << uint(y)
			}
			y = x - 1
			for y >= 0 && full>>uint(y)&1 == 1 {
				y--
			}
			if y >= 0 && y < x-1 {
				out |= 1 << uint(y)
			}
			outflankTable[x][o6] = uint8(out)
		}

		for out := 0; out < len(flippedTable[x]); out++ {
			f := 0
			for b := out; b != 0; b &= b - 1 {
				y := bits.TrailingZeros32(uint32(b))
				if y > x {
					f |= (1<<uint(y) - 1) &^ (1<<uint(x+1) - 1)
				} else {
					f |= (1<<uint(x) - 1) &^ (1<<uint(y+1) - 1)
				}
			}
			flippedTable[x][out] = uint8(f)
		}
	}
}

func initCountFlipTable() {
	for x := 0; x < 8; x++ {
		for p8 := 0; p8 < 256; p8++ {
			if p8>>uint(x)&1 == 1 {
				continue // square occupied, nothing to count
			}
			n := 0
			y := x + 1
			for y < 8 && p8>>uint(y)&1 == 0 {
				y++
			}
			if y < 8 {
				n += y - x - 1
			}
			y = x - 1
			for y >= 0 && p8>>uint(y)&1 == 0 {
				y--
			}
			if y >= 0 {
				n += x - y - 1
			}
			countFlip[x][p8] = uint8(2 * n)
		}
	}

	for axis := AxisRow; axis <= AxisDiagNW; axis++ {
		for sq := 0; sq < 64; sq++ {
			line := lineMask[axis][sq]
			bit := uint64(1) << uint(sq)
			aboveMask[axis][sq] = line &^ (bit<<1 - 1)
			belowMask[axis][sq] = line & (bit - 1)
		}
	}
}

// edgeFlips returns the discs of an 8-square line flipped by the side
// holding pattern p playing at x against pattern o.
func edgeFlips(x, p, o int) int {
	f := 0
	y := x + 1
	for y < 8 && o>>uint(y)&1 == 1 {
		y++
	}
	if y < 8 && y > x+1 && p>>uint(y)&1 == 1 {
		f |= (1<<uint(y) - 1) &^ (1<<uint(x+1) - 1)
	}
	y = x - 1
	for y >= 0 && o>>uint(y)&1 == 1 {
		y--
	}
	if y >= 0 && y < x-1 && p>>uint(y)&1 == 1 {
		f |= (1<<uint(x) - 1) &^ (1<<uint(y+1) - 1)
	}
	return f
}

// findEdgeStable narrows stable to the discs of p that survive every way of
// filling the remaining empties of the line, with either side placing each
// disc. Placements that flip nothing still occupy the square, since a flip
// elsewhere on the board can justify them.
func findEdgeStable(p, o, stable int) int {
	stable &= p
	empties := ^(p | o) & 0xFF
	if stable == 0 || empties == 0 {
		return stable
	}
	for x := 0; x < 8; x++ {
		bit := 1 << uint(x)
		if empties&bit == 0 {
			continue
		}
		fl := edgeFlips(x, p, o)
		stable = findEdgeStable(p|bit|fl, o&^fl, stable)
		if stable == 0 {
			return 0
		}
		fl = edgeFlips(x, o, p)
		stable = findEdgeStable(p&^fl, o|bit|fl, stable)
		if stable == 0 {
			return 0
		}
	}
	return stable
}

func initEdgeStability() {
	for p := 0; p < 256; p++ {
		for o := 0; o < 256; o++ {
			if p&o != 0 {
				continue // impossible line, leave zero
			}
			edgeStable[p<<8|o] = uint8(findEdgeStable(p, o, p))
		}
	}
}
