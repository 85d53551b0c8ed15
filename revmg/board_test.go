package revmg_test

import (
	"testing"

	"github.com/matryer/is"

	"reversi-engine/revmg"
)

func TestNewBoard(t *testing.T) {
	is := is.New(t)
	b := revmg.NewBoard()
	is.NoErr(b.Validate())
	is.Equal(b.SideToMove(), revmg.Black)
	is.Equal(b.CountDiscs(revmg.Black), 2)
	is.Equal(b.CountDiscs(revmg.White), 2)
	is.Equal(b.EmptyCount(), 60)
	is.True(b.HasMoves())
	is.True(!b.GameOver())
}

func TestPlayAndUnplay(t *testing.T) {
	is := is.New(t)
	b := revmg.NewBoard()
	before := b.String()
	beforeKey := b.Hash()

	moves := b.AppendMoves(nil)
	is.Equal(len(moves), 4)
	for _, sq := range moves {
		ok, st := b.Play(sq)
		is.True(ok)
		is.NoErr(b.Validate()) // incremental hash must match a recount
		is.Equal(b.SideToMove(), revmg.White)
		is.Equal(b.CountDiscs(revmg.Black), 4)
		is.Equal(b.CountDiscs(revmg.White), 1)
		is.Equal(st.Square(), sq)

		b.Unplay(st)
		is.Equal(b.String(), before)
		is.Equal(b.Hash(), beforeKey)
	}
}

func TestPlayIllegal(t *testing.T) {
	is := is.New(t)
	b := revmg.NewBoard()
	before := b.String()

	ok, _ := b.Play(revmg.Square(27)) // occupied
	is.True(!ok)
	ok, _ = b.Play(revmg.Square(0)) // empty but flips nothing
	is.True(!ok)
	ok, _ = b.Play(revmg.NoSquare)
	is.True(!ok)
	ok, _ = b.Play(revmg.PassSquare)
	is.True(!ok)
	is.Equal(b.String(), before)
}

func TestPassRoundTrip(t *testing.T) {
	is := is.New(t)
	b := revmg.NewBoard()
	key := b.Hash()

	st := b.Pass()
	is.Equal(b.SideToMove(), revmg.White)
	is.Equal(st.Square(), revmg.PassSquare)
	is.NoErr(b.Validate())
	is.True(b.Hash() != key) // side to move is hashed

	b.Unplay(st)
	is.Equal(b.SideToMove(), revmg.Black)
	is.Equal(b.Hash(), key)
}

func TestGameOverAndScore(t *testing.T) {
	is := is.New(t)

	// played-out board: 40 black discs, 24 white
	full := ""
	for i := 0; i < 40; i++ {
		full += "X"
	}
	for i := 0; i < 24; i++ {
		full += "O"
	}
	b, err := revmg.ParseBoard(full + " X")
	is.NoErr(err)
	is.True(b.GameOver())
	is.True(!b.MustPass())
	is.Equal(b.FinalScore(), 16)

	// the loser's score counts the empties against them: two black discs
	// in one corner, one white disc in the other, nobody can move
	sparse := "XX"
	for i := 0; i < 61; i++ {
		sparse += "-"
	}
	b, err = revmg.ParseBoard(sparse + "O O")
	is.NoErr(err)
	is.True(b.GameOver())
	is.Equal(b.FinalScore(), -62) // white is a disc down plus 61 empties
}
