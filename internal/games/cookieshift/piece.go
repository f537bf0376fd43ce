package cookieshift

// Piece is one of the six cookie kinds that fill the board.
// Pieces are compared by identity only.
type Piece int8

const (
	PieceMascot Piece = iota
	PieceCheckered
	PieceDonut
	PieceFlower
	PieceGreen
	PieceHeart
)

// PieceKinds is the number of distinct piece kinds.
const PieceKinds = 6

// Pieces returns the full catalog in sprite-sheet order.
func Pieces() [PieceKinds]Piece {
	return [PieceKinds]Piece{
		PieceMascot,
		PieceCheckered,
		PieceDonut,
		PieceFlower,
		PieceGreen,
		PieceHeart,
	}
}

// SpriteIndex maps a piece to its index in the display glyph table.
func (p Piece) SpriteIndex() int {
	return int(p)
}

// String returns the piece name for debugging and snapshots.
func (p Piece) String() string {
	switch p {
	case PieceMascot:
		return "mascot"
	case PieceCheckered:
		return "checkered"
	case PieceDonut:
		return "donut"
	case PieceFlower:
		return "flower"
	case PieceGreen:
		return "green"
	case PieceHeart:
		return "heart"
	default:
		return "unknown"
	}
}
