package revmg

// MoveState holds the minimal state needed to undo a move.
type MoveState struct {
	sq      Square
	flipped uint64
	prevKey uint64
}

// Square returns the square the recorded move was played on, or PassSquare.
func (st MoveState) Square() Square { return st.sq }

// Flipped returns the discs the recorded move turned over.
func (st MoveState) Flipped() uint64 { return st.flipped }

// Play applies the move at sq for the side to move, swaps the perspective
// and toggles the side. Returns false with the board unchanged when the move
// is illegal. Use Pass when the side to move has no legal move.
func (b *Board) Play(sq Square) (ok bool, st MoveState) {
	if sq < 0 || sq >= 64 {
		return false, st
	}
	flipped := Flip(sq, b.player, b.opponent)
	if flipped == 0 {
		return false, st
	}
	st = MoveState{sq: sq, flipped: flipped, prevKey: b.zobristKey}

	us := int(b.sideToMove)
	them := us ^ 1
	b.player |= flipped | uint64(1)<<uint(sq)
	b.opponent &^= flipped
	b.zobristKey ^= zobristDisc[us][sq]
	for f := flipped; f != 0; {
		i := popLSB(&f)
		b.zobristKey ^= zobristDisc[us][i] ^ zobristDisc[them][i]
	}

	b.player, b.opponent = b.opponent, b.player
	b.sideToMove = b.sideToMove.Other()
	b.zobristKey ^= zobristSide
	return true, st
}

// Pass gives the turn to the opponent without placing a disc.
func (b *Board) Pass() MoveState {
	st := MoveState{sq: PassSquare, prevKey: b.zobristKey}
	b.player, b.opponent = b.opponent, b.player
	b.sideToMove = b.sideToMove.Other()
	b.zobristKey ^= zobristSide
	return st
}

// Unplay reverts the move recorded in st. States must be undone in reverse
// order of play.
func (b *Board) Unplay(st MoveState) {
	b.player, b.opponent = b.opponent, b.player
	b.sideToMove = b.sideToMove.Other()
	if st.sq != PassSquare {
		b.player &^= st.flipped | uint64(1)<<uint(st.sq)
		b.opponent |= st.flipped
	}
	b.zobristKey = st.prevKey
}
