package cookieshift

import (
	"math/rand"
	"testing"
)

func TestFillPopulatesEmptyBoard(t *testing.T) {
	var b Board
	rng := rand.New(rand.NewSource(1))

	filled := b.Fill(rng)

	if !b.IsFull() {
		t.Fatal("board should be full after Fill")
	}
	if len(filled) != BoardSize*BoardSize {
		t.Errorf("filled %d cells, want %d", len(filled), BoardSize*BoardSize)
	}
	if HasClear(b.Pieces()) {
		t.Error("filled board must have no static clear")
	}
	if got := CountClears(b.Pieces()); got != 0 {
		t.Errorf("filled board CountClears = %d, want 0", got)
	}
}

func TestFillNoClearAcrossSeeds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		var b Board
		b.Fill(rand.New(rand.NewSource(seed)))
		if HasClear(b.Pieces()) {
			t.Fatalf("seed %d produced a board with a clear", seed)
		}
	}
}

func TestFillPreservesOccupiedCells(t *testing.T) {
	var b Board
	b.Set(0, 0, PieceHeart)
	b.Set(3, 2, PieceDonut)

	filled := b.Fill(rand.New(rand.NewSource(7)))

	if p, _ := b.At(0, 0); p != PieceHeart {
		t.Error("occupied cell (0,0) was overwritten")
	}
	if p, _ := b.At(3, 2); p != PieceDonut {
		t.Error("occupied cell (3,2) was overwritten")
	}

	if len(filled) != BoardSize*BoardSize-2 {
		t.Errorf("filled %d cells, want %d", len(filled), BoardSize*BoardSize-2)
	}
	for _, f := range filled {
		if (f.X == 0 && f.Y == 0) || (f.X == 3 && f.Y == 2) {
			t.Errorf("Fill reported already-occupied cell (%d,%d)", f.X, f.Y)
		}
	}
}

func TestFillDeterministic(t *testing.T) {
	var b1, b2 Board
	b1.Fill(rand.New(rand.NewSource(42)))
	b2.Fill(rand.New(rand.NewSource(42)))

	if b1.Pieces() != b2.Pieces() {
		t.Error("same seed should fill identical boards")
	}
}

func TestFillOnFullBoardIsNoop(t *testing.T) {
	b := fullBoard(
		"ABCDE",
		"BCDEA",
		"CDEAB",
		"DEABC",
		"EABCD",
	)
	before := b.Pieces()

	if filled := b.Fill(rand.New(rand.NewSource(1))); filled != nil {
		t.Errorf("Fill on a full board returned %d cells, want none", len(filled))
	}
	if b.Pieces() != before {
		t.Error("Fill on a full board must not change it")
	}
}

func TestFillRetriesPastForcedClear(t *testing.T) {
	// Four A's pre-placed in a row: a naive single draw would often complete
	// the line; rejection sampling must never leave it uniform.
	for seed := int64(0); seed < 30; seed++ {
		var b Board
		for x := 0; x < 4; x++ {
			b.Set(x, 0, PieceMascot)
		}
		b.Fill(rand.New(rand.NewSource(seed)))

		if p, _ := b.At(4, 0); p == PieceMascot {
			t.Fatalf("seed %d completed a uniform row", seed)
		}
	}
}
