package cookieshift

import "testing"

func line(s string) [BoardSize]Piece {
	var l [BoardSize]Piece
	for i, r := range s {
		l[i] = Piece(r - 'A')
	}
	return l
}

func TestRotateLine(t *testing.T) {
	tests := []struct {
		name    string
		dir     Direction
		want    string
		ejected Piece
	}{
		{"right rotates toward higher indices", DirRight, "EABCD", Piece('E' - 'A')},
		{"down rotates toward higher indices", DirDown, "EABCD", Piece('E' - 'A')},
		{"left rotates toward lower indices", DirLeft, "BCDEA", Piece('A' - 'A')},
		{"up rotates toward lower indices", DirUp, "BCDEA", Piece('A' - 'A')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rotated, ejected := RotateLine(line("ABCDE"), tt.dir)
			if rotated != line(tt.want) {
				t.Errorf("RotateLine(ABCDE, %v) = %v, want %v", tt.dir, rotated, line(tt.want))
			}
			if ejected != tt.ejected {
				t.Errorf("ejected = %v, want %v", ejected, tt.ejected)
			}
		})
	}
}

func TestRotateLinePreservesPieces(t *testing.T) {
	src := line("ABBCF")
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		rotated, _ := RotateLine(src, dir)

		var srcCount, rotCount [PieceKinds]int
		for i := range src {
			srcCount[src[i]]++
			rotCount[rotated[i]]++
		}
		if srcCount != rotCount {
			t.Errorf("%v rotation changed the piece multiset: %v -> %v", dir, src, rotated)
		}
	}
}

// fullBoard builds an occupied board from five 5-letter strings.
func fullBoard(rows ...string) Board {
	var b Board
	for y, row := range rows {
		for x, r := range row {
			b.Set(x, y, Piece(r-'A'))
		}
	}
	return b
}

func TestSlideRowRight(t *testing.T) {
	b := fullBoard(
		"FFFFF",
		"FFFFF",
		"ABCDE",
		"FFFFF",
		"FFFFF",
	)

	res := b.Slide(Cursor{X: 2, Y: 2}, DirRight)

	// The row becomes its one-step rotation and the wrapping piece is the
	// one shown exiting at the right edge.
	if res.Line != line("EABCD") {
		t.Errorf("new line = %v, want EABCD", res.Line)
	}
	if res.Ejected != Piece('E'-'A') {
		t.Errorf("ejected = %v, want E", res.Ejected)
	}
	if res.ExitX != 4 || res.ExitY != 2 {
		t.Errorf("exit cell = (%d,%d), want (4,2)", res.ExitX, res.ExitY)
	}
	if res.DX != 1 || res.DY != 0 {
		t.Errorf("travel = (%d,%d), want (1,0)", res.DX, res.DY)
	}

	for x := 0; x < BoardSize; x++ {
		p, ok := b.At(x, 2)
		if !ok || p != res.Line[x] {
			t.Errorf("board row cell %d = %v, want %v", x, p, res.Line[x])
		}
	}
}

func TestSlideColumnUp(t *testing.T) {
	b := fullBoard(
		"FAFFF",
		"FBFFF",
		"FCFFF",
		"FDFFF",
		"FEFFF",
	)

	res := b.Slide(Cursor{X: 1, Y: 3}, DirUp)

	if res.Line != line("BCDEA") {
		t.Errorf("new line = %v, want BCDEA", res.Line)
	}
	if res.Ejected != Piece('A'-'A') {
		t.Errorf("ejected = %v, want A", res.Ejected)
	}
	if res.ExitX != 1 || res.ExitY != 0 {
		t.Errorf("exit cell = (%d,%d), want (1,0)", res.ExitX, res.ExitY)
	}
	if res.DX != 0 || res.DY != -1 {
		t.Errorf("travel = (%d,%d), want (0,-1)", res.DX, res.DY)
	}

	for y := 0; y < BoardSize; y++ {
		p, _ := b.At(1, y)
		if p != res.Line[y] {
			t.Errorf("board column cell %d = %v, want %v", y, p, res.Line[y])
		}
	}
}

func TestSlideTouchesOnlySelectedLine(t *testing.T) {
	b := fullBoard(
		"ABCDE",
		"BCDEA",
		"CDEAB",
		"DEABC",
		"EABCD",
	)
	before := b.Pieces()

	b.Slide(Cursor{X: 3, Y: 1}, DirLeft)
	after := b.Pieces()

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if y == 1 {
				continue // the slid row
			}
			if after[y][x] != before[y][x] {
				t.Errorf("cell (%d,%d) changed by a row slide on another row", x, y)
			}
		}
	}
}

func TestSlideKeepsBoardFull(t *testing.T) {
	b := fullBoard(
		"ABCDE",
		"BCDEA",
		"CDEAB",
		"DEABC",
		"EABCD",
	)

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		b.Slide(Cursor{X: 2, Y: 2}, dir)
		if !b.IsFull() {
			t.Fatalf("board not full after %v slide", dir)
		}
	}
}

func TestSlideVerticalUsesCursorColumn(t *testing.T) {
	b := fullBoard(
		"ABCDE",
		"BCDEA",
		"CDEAB",
		"DEABC",
		"EABCD",
	)

	res := b.Slide(Cursor{X: 4, Y: 0}, DirDown)
	for i, c := range res.Cells {
		if c[0] != 4 || c[1] != i {
			t.Errorf("cell %d = (%d,%d), want (4,%d)", i, c[0], c[1], i)
		}
	}
}
