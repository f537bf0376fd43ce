package cookieshift

import "github.com/vovakirdan/tui-cookieshift/internal/core"

// BoardSize is the board dimension. The whole game is built around a 5x5
// board: clears are full lines of 5 and slides rotate lines of 5.
const BoardSize = 5

// Direction represents a cursor or slide direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// cell holds the optional piece occupying a board position.
type cell struct {
	piece    Piece
	occupied bool
}

// Board is the 5x5 matrix of cells. The zero value is an all-empty board.
// Screen convention: x grows right, y grows down, (0,0) is the top-left cell.
type Board struct {
	cells [BoardSize][BoardSize]cell
}

// At returns the piece at (x, y) and whether the cell is occupied.
func (b *Board) At(x, y int) (Piece, bool) {
	c := b.cells[y][x]
	return c.piece, c.occupied
}

// Set places a piece at (x, y).
func (b *Board) Set(x, y int, p Piece) {
	b.cells[y][x] = cell{piece: p, occupied: true}
}

// SetEmpty clears the cell at (x, y).
func (b *Board) SetEmpty(x, y int) {
	b.cells[y][x] = cell{}
}

// ClearAll resets every cell to empty. Triggered by the reset command;
// the filler repopulates the board on the next tick.
func (b *Board) ClearAll() {
	b.cells = [BoardSize][BoardSize]cell{}
}

// IsFull returns true when every cell holds a piece.
func (b *Board) IsFull() bool {
	return !b.HasEmpty()
}

// HasEmpty returns true if at least one cell is unoccupied.
func (b *Board) HasEmpty() bool {
	for y := range b.cells {
		for x := range b.cells[y] {
			if !b.cells[y][x].occupied {
				return true
			}
		}
	}
	return false
}

// Pieces returns the board as a plain piece matrix.
// Only meaningful on a fully-occupied board; callers guard with IsFull.
func (b *Board) Pieces() [BoardSize][BoardSize]Piece {
	var out [BoardSize][BoardSize]Piece
	for y := range b.cells {
		for x := range b.cells[y] {
			out[y][x] = b.cells[y][x].piece
		}
	}
	return out
}

// Cursor is the player-controlled marker position.
type Cursor struct {
	X, Y int
}

// Move shifts the cursor one cell in the given direction, wrapping mod 5.
// It always succeeds and returns the new position.
func (c *Cursor) Move(dir Direction) (int, int) {
	switch dir {
	case DirUp:
		c.Y = core.Mod(c.Y-1, BoardSize)
	case DirDown:
		c.Y = core.Mod(c.Y+1, BoardSize)
	case DirLeft:
		c.X = core.Mod(c.X-1, BoardSize)
	case DirRight:
		c.X = core.Mod(c.X+1, BoardSize)
	}
	return c.X, c.Y
}
