package cookieshift

import "math/rand"

// CellFill records one cell populated by the filler, so the caller can
// push the matching visual update.
type CellFill struct {
	X, Y  int
	Piece Piece
}

// Fill assigns a uniformly random piece to every empty cell such that the
// resulting fully-occupied board has no static clear. Occupied cells are
// held fixed. Uses rejection sampling: with six kinds over five-cell lines
// a draw fails rarely, so the loop terminates almost surely and carries no
// retry bound on purpose.
//
// Returns the cells that were filled, in row-major order.
func (b *Board) Fill(rng *rand.Rand) []CellFill {
	if !b.HasEmpty() {
		return nil
	}

	kinds := Pieces()
	var candidate [BoardSize][BoardSize]Piece
	for {
		for y := 0; y < BoardSize; y++ {
			for x := 0; x < BoardSize; x++ {
				if p, ok := b.At(x, y); ok {
					candidate[y][x] = p
				} else {
					candidate[y][x] = kinds[rng.Intn(PieceKinds)]
				}
			}
		}
		if !HasClear(candidate) {
			break
		}
	}

	var filled []CellFill
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if _, ok := b.At(x, y); ok {
				continue
			}
			b.Set(x, y, candidate[y][x])
			filled = append(filled, CellFill{X: x, Y: y, Piece: candidate[y][x]})
		}
	}
	return filled
}
