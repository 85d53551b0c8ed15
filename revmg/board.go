package revmg

import (
	"fmt"
	"math/bits"
)

// Color identifies one of the two disc colors. Black moves first.
type Color uint8

const (
	Black Color = 0
	White Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Square represents a board position (0-63), row-major with a1 = 0 and h8 = 63.
type Square int

const (
	NoSquare Square = -1
	// PassSquare is the pseudo-square played when the side to move has no legal move.
	PassSquare Square = 64
)

// Board represents a reversi position. Discs are stored from the side-to-move
// perspective: player always holds the discs of the side whose turn it is, so
// making a move swaps the two bitboards.
type Board struct {
	player   uint64
	opponent uint64

	// Side to move (which player's turn it is)
	sideToMove Color

	// Zobrist hash key for the current position
	zobristKey uint64
}

// Start position: black on d5/e4, white on d4/e5, black to move.
const (
	startBlack = uint64(1)<<28 | uint64(1)<<35
	startWhite = uint64(1)<<27 | uint64(1)<<36
)

// NewBoard returns the standard initial position with Black to move.
func NewBoard() *Board {
	b := &Board{
		player:     startBlack,
		opponent:   startWhite,
		sideToMove: Black,
	}
	b.zobristKey = b.computeHash()
	return b
}

// Player returns the bitboard of the side to move.
func (b *Board) Player() uint64 { return b.player }

// Opponent returns the bitboard of the side not to move.
func (b *Board) Opponent() uint64 { return b.opponent }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Hash returns the current Zobrist hash key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// Occupied returns the bitboard of all discs on the board.
func (b *Board) Occupied() uint64 { return b.player | b.opponent }

// Empties returns the bitboard of empty squares.
func (b *Board) Empties() uint64 { return ^(b.player | b.opponent) }

// EmptyCount returns the number of empty squares.
func (b *Board) EmptyCount() int { return bits.OnesCount64(b.Empties()) }

// Discs returns the bitboard of the given color, independent of whose turn it is.
func (b *Board) Discs(c Color) uint64 {
	if c == b.sideToMove {
		return b.player
	}
	return b.opponent
}

// CountDiscs returns the number of discs of the given color.
func (b *Board) CountDiscs(c Color) int { return bits.OnesCount64(b.Discs(c)) }

// HasMoves reports whether the side to move has at least one legal move.
func (b *Board) HasMoves() bool { return Moves(b.player, b.opponent) != 0 }

// MustPass reports whether the side to move has no move but the opponent does.
func (b *Board) MustPass() bool {
	return Moves(b.player, b.opponent) == 0 && Moves(b.opponent, b.player) != 0
}

// GameOver reports whether neither side has a legal move.
func (b *Board) GameOver() bool {
	return Moves(b.player, b.opponent) == 0 && Moves(b.opponent, b.player) == 0
}

// Legal reports whether sq is a legal move for the side to move.
func (b *Board) Legal(sq Square) bool {
	if sq < 0 || sq >= 64 {
		return false
	}
	return Moves(b.player, b.opponent)>>uint(sq)&1 != 0
}

// AppendMoves appends every legal move for the side to move onto dst and
// returns the extended slice. dst may be nil or a reused buffer.
func (b *Board) AppendMoves(dst []Square) []Square {
	for m := Moves(b.player, b.opponent); m != 0; {
		dst = append(dst, Square(popLSB(&m)))
	}
	return dst
}

// FinalScore returns the disc difference from the side to move's point of
// view, with remaining empty squares awarded to the winner. Only meaningful
// once the game is over.
func (b *Board) FinalScore() int {
	diff := bits.OnesCount64(b.player) - bits.OnesCount64(b.opponent)
	empties := b.EmptyCount()
	if diff > 0 {
		diff += empties
	} else if diff < 0 {
		diff -= empties
	}
	return diff
}

// Validate performs internal consistency checks, returning a descriptive
// error for the first inconsistency found. Intended for tests and parsers.
func (b *Board) Validate() error {
	if b.player&b.opponent != 0 {
		return fmt.Errorf("overlapping bitboards: %#x", b.player&b.opponent)
	}
	if b.sideToMove != Black && b.sideToMove != White {
		return fmt.Errorf("invalid side to move: %d", b.sideToMove)
	}
	if key := b.computeHash(); key != b.zobristKey {
		return fmt.Errorf("zobrist key mismatch: have %#x want %#x", b.zobristKey, key)
	}
	return nil
}

// popLSB removes and returns the index of the least significant set bit.
func popLSB(bb *uint64) int {
	idx := bits.TrailingZeros64(*bb)
	*bb &= *bb - 1
	return idx
}
