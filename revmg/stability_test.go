package revmg

import (
	"math"
	"math/bits"
	"testing"

	"lukechampine.com/frand"
)

func TestFullLines(t *testing.T) {
	for i := 0; i < 500; i++ {
		p, o := randomPosition()
		disc := p | o
		fullH, fullV, fullNW, fullNE := fullLines(disc)
		got := [4]uint64{fullH, fullV, fullNE, fullNW}
		for sq := 0; sq < 64; sq++ {
			for axis := AxisRow; axis <= AxisDiagNW; axis++ {
				full := lineMask[axis][sq]&^disc == 0
				if has := got[axis]>>uint(sq)&1 != 0; has != full {
					t.Fatalf("full line axis %d at %s: got %v, want %v (disc=%#x)",
						axis, Square(sq), has, full, disc)
				}
			}
		}
	}
}

func TestFullLinesEdgeGaps(t *testing.T) {
	// h4-g5-f6-e7-d8 with g5 empty: h4 sits on the edge ring but its
	// falling diagonal is not full
	disc := uint64(1)<<31 | uint64(1)<<45 | uint64(1)<<52 | uint64(1)<<59
	_, _, fullNW, _ := fullLines(disc)
	if fullNW>>31&1 != 0 {
		t.Errorf("h4 diagonal reported full with g5 empty (fullNW=%#x)", fullNW)
	}

	// a5-b6-c7-d8 with b6 empty
	disc = uint64(1)<<32 | uint64(1)<<50 | uint64(1)<<59
	_, _, _, fullNE := fullLines(disc)
	if fullNE>>32&1 != 0 {
		t.Errorf("a5 diagonal reported full with b6 empty (fullNE=%#x)", fullNE)
	}

	// the same diagonals fully occupied do report full
	disc = uint64(1)<<31 | uint64(1)<<38 | uint64(1)<<45 | uint64(1)<<52 | uint64(1)<<59
	_, _, fullNW, _ = fullLines(disc)
	if fullNW>>31&1 == 0 {
		t.Errorf("occupied h4 diagonal not reported full (fullNW=%#x)", fullNW)
	}
	disc = uint64(1)<<32 | uint64(1)<<41 | uint64(1)<<50 | uint64(1)<<59
	_, _, _, fullNE = fullLines(disc)
	if fullNE>>32&1 == 0 {
		t.Errorf("occupied a5 diagonal not reported full (fullNE=%#x)", fullNE)
	}
}

func TestStabilityFullBoard(t *testing.T) {
	for i := 0; i < 200; i++ {
		p := frand.Uint64n(math.MaxUint64)
		o := ^p
		if got, want := Stability(p, o), bits.OnesCount64(p); got != want {
			t.Fatalf("full board stability = %d, want %d (p=%#x)", got, want, p)
		}
	}
}

func TestStabilityCornerAndEdges(t *testing.T) {
	// a lone corner disc can never be flipped
	if got := Stability(1, 0); got != 1 {
		t.Errorf("lone corner: got %d, want 1", got)
	}
	// a friendly first rank with nothing else on the board is all stable:
	// every disc sits at the foot of its column and diagonals
	if got := Stability(0xFF, 0); got != 8 {
		t.Errorf("full friendly rank: got %d, want 8", got)
	}
	// an interior disc alone is never stable
	if got := Stability(1<<27, 0); got != 0 {
		t.Errorf("lone interior disc: got %d, want 0", got)
	}
}

func TestStabilityBounds(t *testing.T) {
	for i := 0; i < 500; i++ {
		p, o := randomPosition()
		s := Stability(p, o)
		if s < 0 || s > bits.OnesCount64(p) {
			t.Fatalf("stability %d out of range for p=%#x o=%#x", s, p, o)
		}
	}
}

func TestStabilityMonotoneUnderFilling(t *testing.T) {
	// adding opponent discs on empty interior squares can only help:
	// lines get fuller and the edge lookups are untouched
	for i := 0; i < 500; i++ {
		p, o := randomPosition()
		extra := frand.Uint64n(math.MaxUint64) &^ (p | o | edgeRing)
		before := Stability(p, o)
		after := Stability(p, o|extra)
		if after < before {
			t.Fatalf("stability dropped from %d to %d when filling p=%#x o=%#x extra=%#x",
				before, after, p, o, extra)
		}
	}
}

func TestEdgeStableTable(t *testing.T) {
	// overlapping patterns are impossible and read as zero
	if edgeStable[0xFF<<8|0xFF] != 0 {
		t.Error("overlapping edge entry should be zero")
	}
	// a full friendly edge is entirely stable
	if edgeStable[0xFF<<8] != 0xFF {
		t.Errorf("full friendly edge: got %#x, want 0xff", edgeStable[0xFF<<8])
	}
	// corners are stable as soon as they are placed
	if edgeStable[0x01<<8]&0x01 == 0 {
		t.Error("corner disc should be stable")
	}
	// stable discs are always a subset of the friendly pattern
	for p := 0; p < 256; p++ {
		for o := 0; o < 256; o++ {
			if s := edgeStable[p<<8|o]; s&^uint8(p) != 0 {
				t.Fatalf("edgeStable[%#x][%#x] = %#x not a subset", p, o, s)
			}
		}
	}
}
