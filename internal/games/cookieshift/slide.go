package cookieshift

// Slide engine: a modifier-held directional move rotates an entire row or
// column by one step. Every piece relocates by exactly one cell in the
// direction of travel; the piece at the leading edge wraps around to the
// trailing edge and is also the one shown sliding off the board (the
// "ejected" piece). The board stays fully occupied after a slide.

// SlideResult describes a committed line rotation.
type SlideResult struct {
	Cells   [BoardSize][2]int // line cell coordinates {x, y}, in index order
	Line    [BoardSize]Piece  // piece now occupying each line cell
	Ejected Piece             // piece shown exiting the board edge
	ExitX   int               // cell the ejected piece departs from
	ExitY   int
	DX, DY int // unit travel of every piece on the line
}

// Travel returns the unit motion vector for pieces moved by the direction.
func (d Direction) Travel() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// RotateLine rotates a 5-piece line one step toward the direction of travel
// and returns the rotated line plus the wrapping (ejected) piece. Cells are
// indexed by increasing x for horizontal lines and increasing y for vertical
// ones, so Up and Left rotate toward lower indices, Down and Right toward
// higher ones.
func RotateLine(line [BoardSize]Piece, dir Direction) (rotated [BoardSize]Piece, ejected Piece) {
	switch dir {
	case DirUp, DirLeft:
		for i := range rotated {
			rotated[i] = line[(i+1)%BoardSize]
		}
		ejected = line[0]
	case DirDown, DirRight:
		for i := range rotated {
			rotated[i] = line[(i+BoardSize-1)%BoardSize]
		}
		ejected = line[BoardSize-1]
	default:
		rotated = line
	}
	return rotated, ejected
}

// Slide commits a line rotation on the board. Vertical directions act on the
// cursor's column, horizontal directions on the cursor's row. The board must
// be fully occupied; the game loop guards this before calling.
func (b *Board) Slide(cur Cursor, dir Direction) SlideResult {
	var res SlideResult
	res.DX, res.DY = dir.Travel()

	var old [BoardSize]Piece
	for i := 0; i < BoardSize; i++ {
		var x, y int
		if dir == DirUp || dir == DirDown {
			x, y = cur.X, i
		} else {
			x, y = i, cur.Y
		}
		res.Cells[i] = [2]int{x, y}
		old[i], _ = b.At(x, y)
	}

	res.Line, res.Ejected = RotateLine(old, dir)
	for i, c := range res.Cells {
		b.Set(c[0], c[1], res.Line[i])
	}

	// The ejected piece departs from the leading-edge cell.
	switch dir {
	case DirUp, DirLeft:
		res.ExitX, res.ExitY = res.Cells[0][0], res.Cells[0][1]
	case DirDown, DirRight:
		res.ExitX, res.ExitY = res.Cells[BoardSize-1][0], res.Cells[BoardSize-1][1]
	}

	return res
}
