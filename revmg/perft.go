package revmg

// Perft counts the leaf positions of the legal game tree to the given depth.
// A forced pass consumes a ply; a finished game before the horizon counts as
// a single leaf. Used to verify the move generator and flip engine against
// known node counts.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return perft(b.player, b.opponent, depth, false)
}

func perft(p, o uint64, depth int, passed bool) uint64 {
	if depth == 0 {
		return 1
	}
	moves := Moves(p, o)
	if moves == 0 {
		if passed {
			return 1
		}
		return perft(o, p, depth-1, true)
	}
	var nodes uint64
	for moves != 0 {
		sq := Square(popLSB(&moves))
		fl := Flip(sq, p, o)
		nodes += perft(o&^fl, p|fl|uint64(1)<<uint(sq), depth-1, false)
	}
	return nodes
}

// PerftDivide returns the perft node count behind each legal root move. When
// the side to move must pass, the single entry is PassSquare.
func PerftDivide(b *Board, depth int) map[Square]uint64 {
	res := make(map[Square]uint64)
	if depth <= 0 {
		return res
	}
	moves := Moves(b.player, b.opponent)
	if moves == 0 {
		if Moves(b.opponent, b.player) != 0 {
			res[PassSquare] = perft(b.opponent, b.player, depth-1, true)
		}
		return res
	}
	for moves != 0 {
		sq := Square(popLSB(&moves))
		fl := Flip(sq, b.player, b.opponent)
		res[sq] = perft(b.opponent&^fl, b.player|fl|uint64(1)<<uint(sq), depth-1, false)
	}
	return res
}
