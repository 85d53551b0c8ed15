package revmg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reversi-engine/revmg"
)

func TestSquareNotation(t *testing.T) {
	assert.Equal(t, "a1", revmg.Square(0).String())
	assert.Equal(t, "h1", revmg.Square(7).String())
	assert.Equal(t, "a2", revmg.Square(8).String())
	assert.Equal(t, "d3", revmg.Square(19).String())
	assert.Equal(t, "h8", revmg.Square(63).String())
	assert.Equal(t, "ps", revmg.PassSquare.String())

	for sq := revmg.Square(0); sq < 64; sq++ {
		parsed, err := revmg.ParseSquare(sq.String())
		require.NoError(t, err)
		assert.Equal(t, sq, parsed)
	}

	parsed, err := revmg.ParseSquare("PS")
	require.NoError(t, err)
	assert.Equal(t, revmg.PassSquare, parsed)

	for _, bad := range []string{"", "a", "i1", "a9", "a0", "1a", "d33"} {
		_, err := revmg.ParseSquare(bad)
		assert.Error(t, err, "square %q", bad)
	}
}

func TestBoardStringRoundTrip(t *testing.T) {
	b := revmg.NewBoard()
	s := b.String()
	assert.Len(t, s, 66)
	assert.Equal(t, byte('X'), s[65])

	parsed, err := revmg.ParseBoard(s)
	require.NoError(t, err)
	assert.Equal(t, s, parsed.String())
	assert.Equal(t, b.Hash(), parsed.Hash())

	// play a game prefix and round-trip again from White's perspective
	ok, _ := b.Play(revmg.Square(19))
	require.True(t, ok)
	parsed, err = revmg.ParseBoard(b.String())
	require.NoError(t, err)
	assert.Equal(t, revmg.White, parsed.SideToMove())
	assert.Equal(t, b.String(), parsed.String())
}

func TestParseBoardErrors(t *testing.T) {
	_, err := revmg.ParseBoard("XO-")
	assert.Error(t, err)

	bad := strings.Repeat("-", 63) + "? X"
	_, err = revmg.ParseBoard(bad)
	assert.Error(t, err)

	noSide := strings.Repeat("-", 64) + " -"
	_, err = revmg.ParseBoard(noSide)
	assert.Error(t, err)
}

func TestPrettyMarksMoves(t *testing.T) {
	b := revmg.NewBoard()
	out := b.Pretty()
	assert.Contains(t, out, "a b c d e f g h")
	assert.Equal(t, 4, strings.Count(out, "*"))
	assert.Contains(t, out, "Black to move")
}
