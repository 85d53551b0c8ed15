package revmg

import (
	"fmt"
	"strings"
)

// Disc characters used in board strings: black, white, empty.
const (
	blackChar = 'X'
	whiteChar = 'O'
	emptyChar = '-'
)

// String renders the square in coordinate notation, "a1" through "h8".
// PassSquare renders as "ps".
func (s Square) String() string {
	if s == PassSquare {
		return "ps"
	}
	if s < 0 || s > 63 {
		return "??"
	}
	return string([]byte{byte('a' + s&7), byte('1' + s>>3)})
}

// ParseSquare parses coordinate notation ("d3", case-insensitive) or "ps"
// for a pass.
func ParseSquare(s string) (Square, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "ps" || t == "pass" {
		return PassSquare, nil
	}
	if len(t) != 2 || t[0] < 'a' || t[0] > 'h' || t[1] < '1' || t[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return Square(t[1]-'1')*8 + Square(t[0]-'a'), nil
}

// String serializes the position as 64 disc characters from a1 to h8
// followed by the side to move ("X" or "O").
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(66)
	black := b.Discs(Black)
	white := b.Discs(White)
	for sq := 0; sq < 64; sq++ {
		switch {
		case black>>uint(sq)&1 != 0:
			sb.WriteByte(blackChar)
		case white>>uint(sq)&1 != 0:
			sb.WriteByte(whiteChar)
		default:
			sb.WriteByte(emptyChar)
		}
	}
	sb.WriteByte(' ')
	if b.sideToMove == Black {
		sb.WriteByte(blackChar)
	} else {
		sb.WriteByte(whiteChar)
	}
	return sb.String()
}

// ParseBoard parses the serialization produced by String: 64 disc
// characters (a1 first, '.' accepted for empty) and a trailing side-to-move
// character, separated by optional whitespace.
func ParseBoard(s string) (*Board, error) {
	var black, white uint64
	fields := strings.Fields(s)
	compact := strings.Join(fields, "")
	if len(compact) != 65 {
		return nil, fmt.Errorf("board string needs 64 discs and a side char, got %d characters", len(compact))
	}
	for sq := 0; sq < 64; sq++ {
		switch compact[sq] {
		case blackChar, 'x', 'b':
			black |= uint64(1) << uint(sq)
		case whiteChar, 'o', 'w':
			white |= uint64(1) << uint(sq)
		case emptyChar, '.', '_':
		default:
			return nil, fmt.Errorf("invalid disc character %q at square %s", compact[sq], Square(sq))
		}
	}
	b := &Board{}
	switch compact[64] {
	case blackChar, 'x', 'b':
		b.sideToMove = Black
		b.player, b.opponent = black, white
	case whiteChar, 'o', 'w':
		b.sideToMove = White
		b.player, b.opponent = white, black
	default:
		return nil, fmt.Errorf("invalid side-to-move character %q", compact[64])
	}
	b.zobristKey = b.computeHash()
	return b, nil
}

// Pretty renders the position as a grid with rank 1 at the top, marking the
// legal moves of the side to move with '*'.
func (b *Board) Pretty() string {
	var sb strings.Builder
	black := b.Discs(Black)
	white := b.Discs(White)
	moves := Moves(b.player, b.opponent)
	sb.WriteString("  a b c d e f g h\n")
	for rank := 0; rank < 8; rank++ {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < 8; file++ {
			sq := uint(rank*8 + file)
			sb.WriteByte(' ')
			switch {
			case black>>sq&1 != 0:
				sb.WriteByte(blackChar)
			case white>>sq&1 != 0:
				sb.WriteByte(whiteChar)
			case moves>>sq&1 != 0:
				sb.WriteByte('*')
			default:
				sb.WriteByte(emptyChar)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s to move, discs X:%d O:%d\n",
		b.sideToMove, b.CountDiscs(Black), b.CountDiscs(White))
	return sb.String()
}
