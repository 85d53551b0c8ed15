package revmg

import "math/bits"

// innerCols masks off files a and h, where horizontal and diagonal shifts
// would wrap to the neighbouring rank.
const innerCols = 0x7E7E7E7E7E7E7E7E

// Moves returns the bitboard of legal move squares for the side holding p
// against o. A square is legal when at least one axis carries an unbroken
// run of opponent discs from it to a friendly disc.
func Moves(p, o uint64) uint64 {
	moves := slideMoves(p, o&innerCols, 1)
	moves |= slideMoves(p, o, 8)
	moves |= slideMoves(p, o&innerCols, 7)
	moves |= slideMoves(p, o&innerCols, 9)
	return moves &^ (p | o)
}

// Mobility returns the number of legal moves for the side holding p.
func Mobility(p, o uint64) int {
	return bits.OnesCount64(Moves(p, o))
}

// slideMoves finds move candidates along one axis pair with a parallel
// prefix ripple: two single steps seed runs of opponent discs adjacent to
// friendly discs, then two doubled steps extend the runs to full length.
// The candidates land one step beyond each run.
func slideMoves(p, o uint64, dir uint) uint64 {
	flipL := o & (p << dir)
	flipL |= o & (flipL << dir)
	maskL := o & (o << dir)
	flipL |= maskL & (flipL << (dir * 2))
	flipL |= maskL & (flipL << (dir * 2))

	flipR := o & (p >> dir)
	flipR |= o & (flipR >> dir)
	maskR := o & (o >> dir)
	flipR |= maskR & (flipR >> (dir * 2))
	flipR |= maskR & (flipR >> (dir * 2))

	return flipL<<dir | flipR>>dir
}
