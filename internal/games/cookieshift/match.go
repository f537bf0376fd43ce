package cookieshift

// Clear detection over a fully-occupied board. A clear is a row or column
// whose remaining (not yet claimed) cells all hold the same piece kind.

const fullLineMask = 1<<BoardSize - 1

// CountClears returns the total number of row and column clears, with
// cascading: a claimed line is removed from consideration, which can make
// further lines uniform among the remainder. Scanning repeats until a pass
// claims nothing new or either axis is exhausted. Rows are scanned before
// columns in each pass and both share one claimed set, so a row claimed
// early in a pass shrinks the columns checked later in the same pass.
//
// A line whose remainder is empty counts as uniform, so a monochrome board
// scores all ten lines. Pure query; the board is not mutated.
func CountClears(p [BoardSize][BoardSize]Piece) int {
	cnt := 0
	claimedRows := 0
	claimedCols := 0

	for {
		prev := cnt

		for row := 0; row < BoardSize; row++ {
			if claimedRows&(1<<row) != 0 {
				continue
			}
			if rowUniform(p, row, claimedCols) {
				cnt++
				claimedRows |= 1 << row
			}
		}
		for col := 0; col < BoardSize; col++ {
			if claimedCols&(1<<col) != 0 {
				continue
			}
			if colUniform(p, col, claimedRows) {
				cnt++
				claimedCols |= 1 << col
			}
		}

		if prev == cnt || claimedRows == fullLineMask || claimedCols == fullLineMask {
			return cnt
		}
	}
}

// rowUniform reports whether all cells of the row outside claimed columns
// hold the same piece.
func rowUniform(p [BoardSize][BoardSize]Piece, row, claimedCols int) bool {
	first := true
	var ref Piece
	for col := 0; col < BoardSize; col++ {
		if claimedCols&(1<<col) != 0 {
			continue
		}
		if first {
			ref = p[row][col]
			first = false
			continue
		}
		if p[row][col] != ref {
			return false
		}
	}
	return true
}

// colUniform reports whether all cells of the column outside claimed rows
// hold the same piece.
func colUniform(p [BoardSize][BoardSize]Piece, col, claimedRows int) bool {
	first := true
	var ref Piece
	for row := 0; row < BoardSize; row++ {
		if claimedRows&(1<<row) != 0 {
			continue
		}
		if first {
			ref = p[row][col]
			first = false
			continue
		}
		if p[row][col] != ref {
			return false
		}
	}
	return true
}

// HasClear is the static single-pass check used by the board filler:
// true if any whole row or whole column is uniform, without cascading.
func HasClear(p [BoardSize][BoardSize]Piece) bool {
	for row := 0; row < BoardSize; row++ {
		if rowUniform(p, row, 0) {
			return true
		}
	}
	for col := 0; col < BoardSize; col++ {
		if colUniform(p, col, 0) {
			return true
		}
	}
	return false
}
